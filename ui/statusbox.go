package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StatusBox is a single status line below the list. It shows either an error
// or an informational message.
type StatusBox struct {
	height, width int
	err           error
	info          string
}

func NewStatusBox() *StatusBox {
	return &StatusBox{}
}

func (s *StatusBox) SetError(err error) {
	s.err = err
	s.info = ""
}

func (s *StatusBox) SetInfo(msg string) {
	s.info = msg
	s.err = nil
}

// Err returns the error currently displayed, if any.
func (s *StatusBox) Err() error {
	return s.err
}

// Info returns the message currently displayed, if any.
func (s *StatusBox) Info() string {
	return s.info
}

func (s *StatusBox) Clear() {
	s.err = nil
	s.info = ""
}

func (s *StatusBox) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *StatusBox) String() string {
	var text string
	style := infoStyle
	switch {
	case s.err != nil:
		text = s.err.Error()
		style = errStyle
	case s.info != "":
		text = s.info
	}

	text = strings.Join(strings.Split(text, "\n"), "//")
	if s.width > 3 && runewidth.StringWidth(text) > s.width-3 {
		text = runewidth.Truncate(text, s.width-3, "...")
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, style.Render(text))
}
