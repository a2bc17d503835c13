package app

import (
	"context"
	"fmt"
	"time"

	"launch-browser/browser"
	"launch-browser/config"
	"launch-browser/keys"
	"launch-browser/launch"
	"launch-browser/log"
	"launch-browser/ui"
	"launch-browser/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// wheelStep is the number of lines one mouse wheel notch scrolls.
const wheelStep = 3

// statusDuration is how long errors and notices stay in the status line.
const statusDuration = 3 * time.Second

// Fetcher loads one page of launches. Implemented by *api.Client.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) ([]launch.Launch, error)
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, fetcher Fetcher) error {
	h := newHome(ctx, cfg, fetcher)
	defer h.close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion()) // Mouse scroll
	}

	p := tea.NewProgram(h, opts...)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateSearch is the state when keystrokes go to the search box.
	stateSearch
	// stateHelp is the state when a help screen is displayed.
	stateHelp
)

type home struct {
	ctx    context.Context
	cancel context.CancelFunc

	appConfig *config.Config
	fetcher   Fetcher

	// -- State --

	// state is the current discrete state of the application
	state state
	// browser owns the loaded launches, paging phase, query and disclosures
	browser *browser.Browser
	// scrollLog rate limits the log line for scroll events that start no fetch
	scrollLog *log.Every

	// -- UI Components --

	// list displays the launches
	list *ui.List
	// search is the mission name filter input
	search *ui.SearchBar
	// statusBox displays errors and notices
	statusBox *ui.StatusBox
	// statusSeq numbers status messages so a stale hide timer leaves a newer one alone
	statusSeq int
	// footer shows the short key help
	footer help.Model
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model
	// textOverlay displays the help screen
	textOverlay *overlay.TextOverlay

	width, height int
}

func newHome(ctx context.Context, cfg *config.Config, fetcher Fetcher) *home {
	ctx, cancel := context.WithCancel(ctx)

	h := &home{
		ctx:       ctx,
		cancel:    cancel,
		appConfig: cfg,
		fetcher:   fetcher,
		state:     stateDefault,
		browser:   browser.New(),
		scrollLog: log.NewEvery(5 * time.Second),
		search:    ui.NewSearchBar(),
		statusBox: ui.NewStatusBox(),
		footer:    help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	h.list = ui.NewList(h.browser, &h.spinner)
	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	const searchHeight = 3 // bordered single line
	const statusHeight = 1
	const footerHeight = 1

	m.search.SetWidth(msg.Width)
	m.statusBox.SetSize(msg.Width, statusHeight)
	m.footer.Width = msg.Width

	listHeight := msg.Height - searchHeight - statusHeight - footerHeight
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(msg.Width, listHeight)

	if m.textOverlay != nil {
		m.textOverlay.SetWidth(int(float32(msg.Width) * 0.6))
	}
}

func (m *home) Init() tea.Cmd {
	// The browser starts out fetching page 1.
	log.InfoLog.Printf("loading launches from %s", m.appConfig.Endpoint)
	return tea.Batch(
		m.spinner.Tick,
		m.fetchPageCmd(m.browser.Page()),
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		if !m.browser.Loaded(msg.page, msg.launches) {
			log.WarningLog.Printf("dropping result for page %d (phase %s, page %d)", msg.page, m.browser.Phase(), m.browser.Page())
			return m, nil
		}
		log.InfoLog.Printf("page %d loaded with %d launches, %d total, phase %s", msg.page, len(msg.launches), m.browser.Len(), m.browser.Phase())
		m.list.Refresh()
		return m, nil
	case pageFailedMsg:
		if !m.browser.Failed(msg.page, msg.err) {
			log.WarningLog.Printf("dropping failure for page %d: %v", msg.page, msg.err)
			return m, nil
		}
		m.list.Refresh()
		return m, m.handleError(fmt.Errorf("could not load page %d: %w", msg.page, msg.err))
	case hideErrMsg:
		// A newer message restarted the timer.
		if msg.seq == m.statusSeq {
			m.statusBox.Clear()
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.browser.IsLoading() {
			m.list.Refresh()
		}
		return m, cmd
	case tea.MouseMsg:
		if m.state != stateDefault || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.ScrollBy(-wheelStep)
			return m, m.onScroll()
		case tea.MouseButtonWheelDown:
			m.list.ScrollBy(wheelStep)
			return m, m.onScroll()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	}
	return m, nil
}

// onScroll runs after every scroll of the list. Reaching the very bottom asks
// the browser for the next page; it refuses while a fetch is in flight or
// after the last page.
func (m *home) onScroll() tea.Cmd {
	if !m.list.AtBottom() {
		return nil
	}

	page, ok := m.browser.ScrollBottomReached()
	if !ok {
		if m.scrollLog.ShouldLog() {
			log.InfoLog.Printf("bottom reached while %s, no fetch started", m.browser.Phase())
		}
		return nil
	}

	m.list.Refresh()
	return m.fetchPageCmd(page)
}

// fetchPageCmd requests a page off the update loop and reports back with the
// page number so late or repeated results can be recognised.
func (m *home) fetchPageCmd(page int) tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		launches, err := fetcher.FetchPage(ctx, page)
		if err != nil {
			return pageFailedMsg{page: page, err: err}
		}
		return pageLoadedMsg{page: page, launches: launches}
	}
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.close()
	return m, tea.Quit
}

// close stops in-flight requests and makes any late result a no-op.
func (m *home) close() {
	if m.browser.Closed() {
		return
	}
	m.browser.Close()
	m.cancel()
	log.InfoLog.Printf("closing with %d launches loaded", m.browser.Len())
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	if m.state == stateHelp {
		return m.handleHelpState(msg)
	}
	if m.state == stateSearch {
		return m.handleSearchState(msg)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	case keys.KeyUp:
		m.list.Up()
		return m, m.onScroll()
	case keys.KeyDown:
		m.list.Down()
		return m, m.onScroll()
	case keys.KeyPageUp:
		m.list.PageUp()
		return m, m.onScroll()
	case keys.KeyPageDown:
		m.list.PageDown()
		return m, m.onScroll()
	case keys.KeyTop:
		m.list.Top()
		return m, m.onScroll()
	case keys.KeyBottom:
		m.list.Bottom()
		return m, m.onScroll()
	case keys.KeyToggle:
		m.list.ToggleSelected()
		return m, nil
	case keys.KeyCopy:
		return m, m.copySelectedLink()
	case keys.KeySearch:
		m.state = stateSearch
		return m, m.search.Focus()
	case keys.KeyEsc:
		if m.search.Value() != "" {
			m.search.Reset()
			m.applyQuery()
		}
		return m, nil
	}
	return m, nil
}

// handleSearchState sends keystrokes to the search box. The filter is applied
// on every change.
func (m *home) handleSearchState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// q is a valid search character, so only ctrl+c quits from here.
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}
	if key.Matches(msg, keys.GlobalkeyBindings[keys.KeySubmitSearch]) || key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEsc]) {
		m.search.Blur()
		m.state = stateDefault
		return m, nil
	}

	changed, cmd := m.search.Update(msg)
	if changed {
		m.applyQuery()
	}
	return m, cmd
}

func (m *home) applyQuery() {
	m.browser.SetQuery(m.search.Value())
	m.list.ResetSelection()
}

func (m *home) copySelectedLink() tea.Cmd {
	selected, ok := m.list.GetSelectedLaunch()
	if !ok {
		return nil
	}
	link := selected.Link()
	if link == "" {
		return m.handleInfo(fmt.Sprintf("%s has no link", selected.Name()))
	}
	if err := copyToClipboard(link); err != nil {
		return m.handleError(fmt.Errorf("could not copy link: %w", err))
	}
	return m.handleInfo("Copied " + link)
}

// hideErrMsg implements tea.Msg and clears the status line if seq still names the message on display.
type hideErrMsg struct {
	seq int
}

// pageLoadedMsg carries a successful page fetch.
type pageLoadedMsg struct {
	page     int
	launches []launch.Launch
}

// pageFailedMsg carries a failed page fetch.
type pageFailedMsg struct {
	page int
	err  error
}

// handleError logs the error and shows it in the status line. We return a callback tea.Cmd that returns a hideErrMsg
// message which clears the status line after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.statusBox.SetError(err)
	return m.hideStatusAfter(statusDuration)
}

// handleInfo shows a notice in the status line for 3 seconds.
func (m *home) handleInfo(text string) tea.Cmd {
	m.statusBox.SetInfo(text)
	return m.hideStatusAfter(statusDuration)
}

func (m *home) hideStatusAfter(d time.Duration) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-ctx.Done():
		case <-time.After(d):
		}

		return hideErrMsg{seq: seq}
	}
}

func (m *home) View() string {
	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.search.String(),
		m.list.String(),
		m.statusBox.String(),
		m.footer.View(keys.FooterKeyMap{}),
	)

	if m.state == stateHelp {
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true)
	}

	return mainView
}
