package app

import (
	"strings"

	"launch-browser/keys"
	"launch-browser/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
}

type helpTypeGeneral struct{}

func (h helpTypeGeneral) toContent() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Launch Browser"),
		"",
		"Browse launches page by page. Scroll to the end of the list to load more.",
		"",
	)

	for _, category := range keys.GetAllCategories() {
		categoryKeys := keys.GetKeysInCategory(category)
		if len(categoryKeys) == 0 {
			continue
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			headerStyle.Render(string(category)+":"),
		)

		for _, keyName := range categoryKeys {
			keyText := keys.GlobalkeyBindings[keyName].Help().Key
			descText := keys.GetKeyHelp(keyName).Description

			// Align descriptions, assuming key text is at most 12 cells
			padding := ""
			if padLen := 12 - lipgloss.Width(keyText); padLen > 0 {
				padding = strings.Repeat(" ", padLen)
			}

			keyLine := keyStyle.Render(keyText) + padding + descStyle.Render("- "+descText)
			content = lipgloss.JoinVertical(lipgloss.Left, content, keyLine)
		}

		content = lipgloss.JoinVertical(lipgloss.Left, content, "")
	}

	return content
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#FFFFFF"})
)

// showHelpScreen displays the help screen overlay.
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) (tea.Model, tea.Cmd) {
	m.textOverlay = overlay.NewTextOverlay(helpType.toContent())
	m.textOverlay.OnDismiss = onDismiss
	if m.width > 0 {
		m.textOverlay.SetWidth(int(float32(m.width) * 0.6))
	}
	m.state = stateHelp
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press will close the help overlay
	if m.textOverlay == nil || m.textOverlay.HandleKeyPress(msg) {
		m.state = stateDefault
		m.textOverlay = nil
		return m, tea.WindowSize()
	}
	return m, nil
}
