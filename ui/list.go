package ui

import (
	"fmt"
	"strings"

	"launch-browser/browser"
	"launch-browser/launch"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	loadingText   = "Loading launches..."
	endOfDataText = "no more data fetched to load."
	noLaunchText  = "No launches"
)

// listHeaderHeight is the title line plus the blank line below it.
const listHeaderHeight = 2

// List renders the visible launches of a browser.Browser inside a scrollable
// viewport and tracks the keyboard selection.
type List struct {
	browser  *browser.Browser
	renderer *LaunchRenderer
	spinner  *spinner.Model
	viewport viewport.Model

	selectedIdx   int
	height, width int

	// visible is the filtered launch set the content was built from.
	visible []launch.Launch
	// itemOffsets and itemHeights locate each visible launch in the content.
	itemOffsets []int
	itemHeights []int
}

func NewList(b *browser.Browser, spinner *spinner.Model) *List {
	l := &List{
		browser:  b,
		renderer: &LaunchRenderer{},
		spinner:  spinner,
		viewport: viewport.New(0, 0),
	}
	l.Refresh()
	return l
}

// SetSize sets the height and width of the list.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.renderer.setWidth(width)

	l.viewport.Width = width
	l.viewport.Height = height - listHeaderHeight
	if l.viewport.Height < 1 {
		l.viewport.Height = 1
	}
	l.Refresh()
	l.ensureSelectedVisible()
}

// Refresh rebuilds the content from the browser. The scroll offset is kept.
func (l *List) Refresh() {
	l.visible = l.browser.Visible()
	if l.selectedIdx >= len(l.visible) {
		l.selectedIdx = len(l.visible) - 1
	}
	if l.selectedIdx < 0 {
		l.selectedIdx = 0
	}
	l.viewport.SetContent(l.content())
}

func (l *List) content() string {
	var b strings.Builder
	l.itemOffsets = l.itemOffsets[:0]
	l.itemHeights = l.itemHeights[:0]

	line := 0
	for i, item := range l.visible {
		block := l.renderer.Render(item, i == l.selectedIdx, l.browser.IsExpanded(item.FlightNumber))
		n := strings.Count(block, "\n") + 1

		l.itemOffsets = append(l.itemOffsets, line)
		l.itemHeights = append(l.itemHeights, n)
		line += n

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block)
	}

	for _, marker := range l.markers() {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(marker)
	}
	return b.String()
}

// markers returns the status lines rendered after the last launch.
func (l *List) markers() []string {
	var out []string
	if l.browser.IsLoading() {
		out = append(out, loadingStyle.Render(l.spinner.View()+" "+loadingText))
	}
	if l.browser.ShowEmptyState() {
		text := noLaunchText
		if q := l.browser.Query(); q != "" {
			text = fmt.Sprintf("No launches match %q", q)
		}
		out = append(out, markerStyle.Render(text))
	}
	if l.browser.ShowEndOfData() {
		out = append(out, markerStyle.Render(endOfDataText))
	}
	return out
}

func (l *List) String() string {
	var b strings.Builder

	titleText := " Launches "
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, mainTitle.Render(titleText), countStyle.Render(l.countIndicator())))
	b.WriteString("\n\n")
	b.WriteString(l.viewport.View())

	return lipgloss.Place(l.width, l.height, lipgloss.Left, lipgloss.Top, b.String())
}

// countIndicator shows how many launches are visible out of those loaded.
func (l *List) countIndicator() string {
	total := l.browser.Len()
	if total == 0 {
		return ""
	}
	if l.browser.Query() != "" {
		return fmt.Sprintf(" [%d/%d]", len(l.visible), total)
	}
	return fmt.Sprintf(" [%d]", total)
}

// NumVisible returns the number of launches passing the current filter.
func (l *List) NumVisible() int {
	return len(l.visible)
}

// SelectedIdx returns the index of the selection among the visible launches.
func (l *List) SelectedIdx() int {
	return l.selectedIdx
}

// GetSelectedLaunch returns the launch under the cursor.
func (l *List) GetSelectedLaunch() (launch.Launch, bool) {
	if len(l.visible) == 0 {
		return launch.Launch{}, false
	}
	return l.visible[l.selectedIdx], true
}

// ToggleSelected flips the disclosure of the selected launch and returns
// whether it is now expanded.
func (l *List) ToggleSelected() (expanded bool, ok bool) {
	item, ok := l.GetSelectedLaunch()
	if !ok {
		return false, false
	}
	expanded = l.browser.Toggle(item.FlightNumber)
	l.Refresh()
	l.ensureSelectedVisible()
	return expanded, true
}

// ResetSelection moves the cursor and the scroll position back to the top.
// Used whenever the filtered set changes shape.
func (l *List) ResetSelection() {
	l.selectedIdx = 0
	l.Refresh()
	l.viewport.SetYOffset(0)
}

// Up selects the previous launch.
func (l *List) Up() {
	if l.selectedIdx > 0 {
		l.selectedIdx--
		l.Refresh()
	}
	l.ensureSelectedVisible()
}

// Down selects the next launch. On the last launch it scrolls to the end of
// the content so the status lines come into view.
func (l *List) Down() {
	if l.selectedIdx < len(l.visible)-1 {
		l.selectedIdx++
		l.Refresh()
		l.ensureSelectedVisible()
		return
	}
	l.viewport.SetYOffset(l.viewport.TotalLineCount())
}

// ScrollBy moves the viewport by delta lines and keeps the selection on screen.
func (l *List) ScrollBy(delta int) {
	l.viewport.SetYOffset(l.viewport.YOffset + delta)
	l.syncSelection()
}

func (l *List) PageDown() {
	l.ScrollBy(l.viewport.Height)
}

func (l *List) PageUp() {
	l.ScrollBy(-l.viewport.Height)
}

// Top selects the first launch and scrolls to the start.
func (l *List) Top() {
	l.selectedIdx = 0
	l.Refresh()
	l.viewport.SetYOffset(0)
}

// Bottom selects the last launch and scrolls to the end.
func (l *List) Bottom() {
	if len(l.visible) > 0 {
		l.selectedIdx = len(l.visible) - 1
	}
	l.Refresh()
	l.viewport.SetYOffset(l.viewport.TotalLineCount())
}

// ScrollMetrics returns the scroll position in the terms of a scroll
// container: offset of the first visible line, visible height and total
// height. The total is never smaller than the visible height.
func (l *List) ScrollMetrics() (scrollTop, clientHeight, scrollHeight int) {
	scrollHeight = l.viewport.TotalLineCount()
	if scrollHeight < l.viewport.Height {
		scrollHeight = l.viewport.Height
	}
	return l.viewport.YOffset, l.viewport.Height, scrollHeight
}

// AtBottom reports whether the list is scrolled to its very end.
func (l *List) AtBottom() bool {
	return AtBottom(l.ScrollMetrics())
}

// ensureSelectedVisible adjusts the scroll offset so the selected launch is on screen.
// When a launch is taller than the viewport its first line wins.
func (l *List) ensureSelectedVisible() {
	if len(l.itemOffsets) == 0 || l.selectedIdx >= len(l.itemOffsets) {
		return
	}

	top := l.itemOffsets[l.selectedIdx]
	bottom := top + l.itemHeights[l.selectedIdx] - 1
	offset := l.viewport.YOffset

	if bottom > offset+l.viewport.Height-1 {
		offset = bottom - l.viewport.Height + 1
	}
	if top < offset {
		offset = top
	}
	if offset != l.viewport.YOffset {
		l.viewport.SetYOffset(offset)
	}
}

// syncSelection moves the selection to the first launch on screen when the
// selected one has scrolled out of view.
func (l *List) syncSelection() {
	if len(l.itemOffsets) == 0 {
		return
	}

	viewTop := l.viewport.YOffset
	viewBottom := viewTop + l.viewport.Height - 1

	top := l.itemOffsets[l.selectedIdx]
	bottom := top + l.itemHeights[l.selectedIdx] - 1
	if bottom >= viewTop && top <= viewBottom {
		return
	}

	for i, start := range l.itemOffsets {
		end := start + l.itemHeights[i] - 1
		if end >= viewTop && start <= viewBottom {
			l.selectedIdx = i
			l.Refresh()
			return
		}
	}
}
