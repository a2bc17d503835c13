package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay represents a read-only text box dismissed by any key.
type TextOverlay struct {
	content   string
	width     int
	Dismissed bool
	// OnDismiss is called once when the overlay is dismissed.
	OnDismiss func()
}

func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{content: content}
}

// HandleKeyPress processes a key press. Any key dismisses the overlay, so it
// always returns true.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	if !t.Dismissed && t.OnDismiss != nil {
		t.OnDismiss()
	}
	t.Dismissed = true
	return true
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// Render renders the text overlay.
func (t *TextOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	if t.width > 0 {
		style = style.Width(t.width)
	}
	return style.Render(t.content)
}
