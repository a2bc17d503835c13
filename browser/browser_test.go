package browser

import (
	"errors"
	"fmt"
	"testing"

	"launch-browser/launch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePage(start, n int) []launch.Launch {
	items := make([]launch.Launch, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Mission %d", start+i)
		items = append(items, launch.Launch{FlightNumber: start + i, MissionName: &name})
	}
	return items
}

func TestNewBrowserStartsFetchingFirstPage(t *testing.T) {
	b := New()

	assert.Equal(t, 1, b.Page())
	assert.Equal(t, PhaseFetching, b.Phase())
	assert.True(t, b.IsLoading())
	assert.True(t, b.HasMore())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.Query())
	assert.False(t, b.ShowEmptyState(), "empty state must not show while the first page loads")
}

func TestPhaseTransitions(t *testing.T) {
	netErr := errors.New("connection refused")

	tests := []struct {
		name      string
		setup     func(b *Browser)
		event     func(b *Browser)
		wantPhase Phase
		wantPage  int
		wantLen   int
	}{
		{
			name:      "non-empty page advances",
			event:     func(b *Browser) { b.Loaded(1, makePage(1, 10)) },
			wantPhase: PhaseIdle,
			wantPage:  2,
			wantLen:   10,
		},
		{
			name:      "empty page exhausts",
			event:     func(b *Browser) { b.Loaded(1, nil) },
			wantPhase: PhaseExhausted,
			wantPage:  1,
		},
		{
			name:      "failure keeps page",
			event:     func(b *Browser) { b.Failed(1, netErr) },
			wantPhase: PhaseError,
			wantPage:  1,
		},
		{
			name:      "scroll while idle fetches",
			setup:     func(b *Browser) { b.Loaded(1, makePage(1, 10)) },
			event:     func(b *Browser) { b.ScrollBottomReached() },
			wantPhase: PhaseFetching,
			wantPage:  2,
			wantLen:   10,
		},
		{
			name:      "scroll while fetching is ignored",
			event:     func(b *Browser) { b.ScrollBottomReached() },
			wantPhase: PhaseFetching,
			wantPage:  1,
		},
		{
			name:      "scroll after error retries same page",
			setup:     func(b *Browser) { b.Failed(1, netErr) },
			event:     func(b *Browser) { b.ScrollBottomReached() },
			wantPhase: PhaseFetching,
			wantPage:  1,
		},
		{
			name:      "scroll after exhaustion is ignored",
			setup:     func(b *Browser) { b.Loaded(1, nil) },
			event:     func(b *Browser) { b.ScrollBottomReached() },
			wantPhase: PhaseExhausted,
			wantPage:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if tt.setup != nil {
				tt.setup(b)
			}
			tt.event(b)

			assert.Equal(t, tt.wantPhase, b.Phase())
			assert.Equal(t, tt.wantPage, b.Page())
			assert.Equal(t, tt.wantLen, b.Len())
		})
	}
}

// Loading and exhausted can never both hold, whatever the event sequence.
func TestLoadingAndExhaustedAreExclusive(t *testing.T) {
	b := New()
	check := func() {
		t.Helper()
		assert.False(t, b.IsLoading() && !b.HasMore())
	}

	check()
	b.Loaded(1, makePage(1, 10))
	check()
	b.ScrollBottomReached()
	check()
	b.Failed(2, errors.New("boom"))
	check()
	b.ScrollBottomReached()
	check()
	b.Loaded(2, nil)
	check()
	b.ScrollBottomReached()
	check()
}

// The page never decreases and grows by one per non-empty page.
func TestPageMonotonicity(t *testing.T) {
	b := New()
	prev := b.Page()
	results := []struct {
		items []launch.Launch
		err   error
	}{
		{items: makePage(1, 10)},
		{err: errors.New("timeout")},
		{items: makePage(11, 10)},
		{err: errors.New("reset")},
		{err: errors.New("reset")},
		{items: makePage(21, 3)},
		{items: nil},
	}

	for i, r := range results {
		page := b.Page()
		if i > 0 {
			var ok bool
			page, ok = b.ScrollBottomReached()
			require.True(t, ok, "step %d", i)
		}
		if r.err != nil {
			b.Failed(page, r.err)
			assert.Equal(t, prev, b.Page(), "failure must not move the page")
		} else if len(r.items) > 0 {
			b.Loaded(page, r.items)
			assert.Equal(t, prev+1, b.Page())
		} else {
			b.Loaded(page, r.items)
			assert.Equal(t, prev, b.Page())
		}
		assert.GreaterOrEqual(t, b.Page(), prev)
		prev = b.Page()
	}
	assert.Equal(t, 23, b.Len())
}

// Once exhausted, no scroll event starts a fetch again.
func TestExhaustionIsSticky(t *testing.T) {
	b := New()
	b.Loaded(1, makePage(1, 10))
	page, ok := b.ScrollBottomReached()
	require.True(t, ok)
	b.Loaded(page, []launch.Launch{})
	require.Equal(t, PhaseExhausted, b.Phase())

	for i := 0; i < 5; i++ {
		_, ok := b.ScrollBottomReached()
		assert.False(t, ok)
	}
	assert.False(t, b.Loaded(page, makePage(11, 10)), "late results cannot revive an exhausted browser")
	assert.False(t, b.Failed(page, errors.New("boom")))
	assert.Equal(t, PhaseExhausted, b.Phase())
	assert.False(t, b.HasMore())
}

// Every completion path clears the loading state.
func TestLoadingClearsOnEveryPath(t *testing.T) {
	paths := map[string]func(b *Browser, page int){
		"success": func(b *Browser, page int) { b.Loaded(page, makePage(1, 10)) },
		"empty":   func(b *Browser, page int) { b.Loaded(page, nil) },
		"failure": func(b *Browser, page int) { b.Failed(page, errors.New("boom")) },
	}

	for name, complete := range paths {
		t.Run(name, func(t *testing.T) {
			b := New()
			require.True(t, b.IsLoading())
			complete(b, b.Page())
			assert.False(t, b.IsLoading())
		})
	}
}

// A second empty page ends pagination with ten launches.
func TestSecondPageEmpty(t *testing.T) {
	b := New()
	b.Loaded(1, makePage(1, 10))

	page, ok := b.ScrollBottomReached()
	require.True(t, ok)
	require.Equal(t, 2, page)
	b.Loaded(page, nil)

	_, ok = b.ScrollBottomReached()
	assert.False(t, ok)

	assert.False(t, b.HasMore())
	assert.True(t, b.ShowEndOfData())
	assert.Equal(t, 10, b.Len())
}

// A failed second page leaves the browser ready to retry page 2.
func TestSecondPageFails(t *testing.T) {
	b := New()
	b.Loaded(1, makePage(1, 10))
	page, ok := b.ScrollBottomReached()
	require.True(t, ok)

	netErr := errors.New("network error")
	require.True(t, b.Failed(page, netErr))

	assert.False(t, b.IsLoading())
	assert.Equal(t, 2, b.Page())
	assert.True(t, b.HasMore())
	assert.Equal(t, 10, b.Len())
	assert.ErrorIs(t, b.Err(), netErr)

	page, ok = b.ScrollBottomReached()
	require.True(t, ok)
	assert.Equal(t, 2, page)
	assert.NoError(t, b.Err())
}

func TestStaleResultsAreIgnored(t *testing.T) {
	b := New()

	assert.False(t, b.Loaded(2, makePage(1, 10)), "page 2 is not in flight")
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsLoading())

	require.True(t, b.Loaded(1, makePage(1, 10)))
	assert.False(t, b.Loaded(1, makePage(1, 10)), "duplicate delivery must not append twice")
	assert.Equal(t, 10, b.Len())
}

func TestResultsAfterCloseAreIgnored(t *testing.T) {
	b := New()
	b.Close()

	assert.False(t, b.Loaded(1, makePage(1, 10)))
	assert.False(t, b.Failed(1, errors.New("boom")))
	_, ok := b.ScrollBottomReached()
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.Closed())
}

func TestLaunchesKeepArrivalOrderWithoutDedup(t *testing.T) {
	b := New()
	b.Loaded(1, makePage(1, 2))
	page, _ := b.ScrollBottomReached()
	b.Loaded(page, makePage(2, 2))

	got := make([]int, 0, b.Len())
	for _, l := range b.Launches() {
		got = append(got, l.FlightNumber)
	}
	assert.Equal(t, []int{1, 2, 2, 3}, got)
}

// Each launch toggles independently, and twice restores the original state.
func TestDisclosureToggle(t *testing.T) {
	b := New()

	assert.False(t, b.IsExpanded(5))
	assert.True(t, b.Toggle(5))
	assert.True(t, b.IsExpanded(5))
	assert.False(t, b.IsExpanded(6), "toggling one launch must not affect another")

	assert.False(t, b.Toggle(5))
	assert.False(t, b.IsExpanded(5))

	b.Toggle(6)
	assert.False(t, b.IsExpanded(5))
	assert.True(t, b.IsExpanded(6))
}

func TestVisibleFollowsQuery(t *testing.T) {
	b := New()
	falcon1, starlink, falcon9 := "Falcon 1", "Starlink-1", "Falcon 9"
	b.Loaded(1, []launch.Launch{
		{FlightNumber: 1, MissionName: &falcon1},
		{FlightNumber: 2, MissionName: &starlink},
		{FlightNumber: 3, MissionName: &falcon9},
	})

	b.SetQuery("Falcon")
	visible := b.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "Falcon 1", visible[0].Name())
	assert.Equal(t, "Falcon 9", visible[1].Name())

	b.SetQuery("nothing")
	assert.Empty(t, b.Visible())
	assert.True(t, b.ShowEmptyState())

	b.SetQuery("")
	assert.Len(t, b.Visible(), 3)
	assert.False(t, b.ShowEmptyState())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "fetching", PhaseFetching.String())
	assert.Equal(t, "exhausted", PhaseExhausted.String())
	assert.Equal(t, "error", PhaseError.String())
}
