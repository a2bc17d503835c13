package ui

import "github.com/charmbracelet/lipgloss"

var mainTitle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230"))

var countStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var titleStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var selectedTitleStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#5a56e0", Dark: "#b3b0ff"})

var listDescStyle = lipgloss.NewStyle().
	PaddingLeft(4).
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var detailStyle = lipgloss.NewStyle().
	PaddingLeft(4).
	Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#bbbbbb"})

var linkStyle = lipgloss.NewStyle().
	PaddingLeft(4).
	Underline(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#58a6ff"})

var hintStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

var successBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#1a1a1a")).
	Background(lipgloss.Color("#51bd73"))

var failedBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color("#de613e"))

var upcomingBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#1a1a1a")).
	Background(lipgloss.Color("#ffaa00"))

var markerStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

var loadingStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(lipgloss.Color("205"))

var errStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"})

var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var searchBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#555555"}).
	Padding(0, 1)

var searchBoxFocusedStyle = searchBoxStyle.
	BorderForeground(lipgloss.Color("62"))

// badgeStyle returns the badge style for a status class.
func badgeStyle(status string) lipgloss.Style {
	switch status {
	case "success":
		return successBadge
	case "failed":
		return failedBadge
	default:
		return upcomingBadge
	}
}
