// Package browser holds the session state of the launch browser: the loaded
// launches, the pagination phase, the search query and the per-launch
// disclosure flags. All mutation goes through the methods below.
//
// A Browser is owned by the UI loop and is not safe for concurrent use.
package browser

import (
	"launch-browser/launch"
)

// Phase is the pagination phase of a Browser.
type Phase int

const (
	// PhaseIdle means no fetch is in flight and more pages may exist.
	PhaseIdle Phase = iota
	// PhaseFetching means a request for the current page is in flight.
	PhaseFetching
	// PhaseExhausted means a page came back empty. It is terminal.
	PhaseExhausted
	// PhaseError means the last request failed. The same page is requested
	// again on the next scroll to the bottom.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseExhausted:
		return "exhausted"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Browser is the state aggregate behind the launch list.
type Browser struct {
	launches []launch.Launch
	// page is the page targeted by the next or in-flight request.
	page    int
	phase   Phase
	lastErr error

	query    string
	expanded map[int]bool

	closed bool
}

// New returns a Browser in its mount state: page 1 is being fetched.
func New() *Browser {
	return &Browser{
		launches: []launch.Launch{},
		page:     1,
		phase:    PhaseFetching,
		expanded: make(map[int]bool),
	}
}

// Page returns the page the next or in-flight request targets.
func (b *Browser) Page() int {
	return b.page
}

// Phase returns the current pagination phase.
func (b *Browser) Phase() Phase {
	return b.phase
}

// IsLoading reports whether a fetch is in flight.
func (b *Browser) IsLoading() bool {
	return b.phase == PhaseFetching
}

// HasMore reports whether further pages may exist.
func (b *Browser) HasMore() bool {
	return b.phase != PhaseExhausted
}

// Err returns the error of the last failed fetch, if the browser is in PhaseError.
func (b *Browser) Err() error {
	if b.phase != PhaseError {
		return nil
	}
	return b.lastErr
}

// Launches returns every loaded launch in arrival order. The slice must not be modified.
func (b *Browser) Launches() []launch.Launch {
	return b.launches
}

// Len returns the number of loaded launches.
func (b *Browser) Len() int {
	return len(b.launches)
}

// ScrollBottomReached handles the list reaching its bottom edge. When no fetch
// is in flight and more pages may exist it moves to PhaseFetching and returns
// the page to request; otherwise it returns ok == false and changes nothing.
func (b *Browser) ScrollBottomReached() (page int, ok bool) {
	if b.closed {
		return 0, false
	}
	switch b.phase {
	case PhaseIdle, PhaseError:
		b.phase = PhaseFetching
		b.lastErr = nil
		return b.page, true
	default:
		return 0, false
	}
}

// Loaded applies the result of a successful fetch of page. An empty result
// exhausts the browser; a non-empty one is appended and advances the page.
// Results for a page that is not in flight, or that arrive after Close, are
// ignored and Loaded returns false.
func (b *Browser) Loaded(page int, items []launch.Launch) bool {
	if !b.accepts(page) {
		return false
	}
	if len(items) == 0 {
		b.phase = PhaseExhausted
		return true
	}
	b.launches = append(b.launches, items...)
	b.page++
	b.phase = PhaseIdle
	return true
}

// Failed applies a failed fetch of page. The page stays the same so the next
// scroll to the bottom retries it.
func (b *Browser) Failed(page int, err error) bool {
	if !b.accepts(page) {
		return false
	}
	b.phase = PhaseError
	b.lastErr = err
	return true
}

func (b *Browser) accepts(page int) bool {
	return !b.closed && b.phase == PhaseFetching && page == b.page
}

// Close marks the browser as torn down. Fetch results that arrive afterwards
// are dropped.
func (b *Browser) Close() {
	b.closed = true
}

// Closed reports whether Close was called.
func (b *Browser) Closed() bool {
	return b.closed
}

// SetQuery replaces the search query.
func (b *Browser) SetQuery(query string) {
	b.query = query
}

// Query returns the current search query.
func (b *Browser) Query() string {
	return b.query
}

// Visible returns the loaded launches matching the query, recomputed on every call.
func (b *Browser) Visible() []launch.Launch {
	return launch.Filter(b.launches, b.query)
}

// Toggle flips the disclosure flag of a launch and returns the new value.
func (b *Browser) Toggle(flightNumber int) bool {
	b.expanded[flightNumber] = !b.expanded[flightNumber]
	return b.expanded[flightNumber]
}

// IsExpanded reports whether the details of a launch are shown.
func (b *Browser) IsExpanded(flightNumber int) bool {
	return b.expanded[flightNumber]
}

// ShowEmptyState reports whether the empty-state marker should be rendered:
// nothing matches and nothing is loading.
func (b *Browser) ShowEmptyState() bool {
	return !b.IsLoading() && len(b.Visible()) == 0
}

// ShowEndOfData reports whether the no-more-data marker should be rendered.
func (b *Browser) ShowEndOfData() bool {
	return !b.HasMore() && !b.IsLoading()
}
