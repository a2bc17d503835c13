package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchPlaceholder = "Search by mission name"

// SearchBar is the mission name filter input shown above the list.
type SearchBar struct {
	input textinput.Model
	width int
}

func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 0
	return &SearchBar{input: ti}
}

// SetWidth sets the outer width of the search box.
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	inner := width - searchBoxStyle.GetHorizontalFrameSize() - len(s.input.Prompt) - 1
	if inner < 1 {
		inner = 1
	}
	s.input.Width = inner
}

// Focus moves keyboard input into the search box.
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

func (s *SearchBar) Blur() {
	s.input.Blur()
}

func (s *SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query text.
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// Reset clears the query text.
func (s *SearchBar) Reset() {
	s.input.Reset()
}

// Update forwards a message to the text input. It reports whether the query
// text changed.
func (s *SearchBar) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	return s.input.Value() != before, cmd
}

func (s *SearchBar) String() string {
	style := searchBoxStyle
	if s.input.Focused() {
		style = searchBoxFocusedStyle
	}
	if s.width > 0 {
		style = style.Width(s.width - style.GetHorizontalBorderSize())
	}
	return style.Render(s.input.View())
}
