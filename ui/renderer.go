package ui

import (
	"fmt"
	"strings"

	"launch-browser/launch"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const expandedIcon = "▼ "
const collapsedIcon = "► "

const (
	unnamedMission = "Unnamed mission"
	noDetails      = "No details available."
)

// LaunchRenderer handles rendering of launch.Launch records
type LaunchRenderer struct {
	width int
}

func (r *LaunchRenderer) setWidth(width int) {
	r.width = width
}

// ToggleHint returns the label of the disclosure control.
func ToggleHint(expanded bool) string {
	if expanded {
		return "hide"
	}
	return "view"
}

// StatusBadge renders the outcome label in its status colors.
func StatusBadge(o launch.Outcome) string {
	return badgeStyle(o.Status()).Render(" " + o.Label() + " ")
}

// Render renders a launch as a title line, a summary line and, when expanded,
// its details and link.
func (r *LaunchRenderer) Render(l launch.Launch, selected bool, expanded bool) string {
	titleS := titleStyle
	if selected {
		titleS = selectedTitleStyle
	}

	icon := collapsedIcon
	if expanded {
		icon = expandedIcon
	}
	prefix := fmt.Sprintf("%s#%d ", icon, l.FlightNumber)

	name := l.Name()
	if !l.HasName() || name == "" {
		name = unnamedMission
	}

	right := lipgloss.JoinHorizontal(lipgloss.Center,
		StatusBadge(l.LaunchSuccess),
		" ",
		hintStyle.Render(ToggleHint(expanded)),
	)
	rightWidth := lipgloss.Width(right)

	// Cut the name if it's too long
	if r.width > 0 {
		avail := r.width - titleS.GetHorizontalFrameSize() - runewidth.StringWidth(prefix) - rightWidth - 2
		if avail < 1 {
			avail = 1
		}
		name = runewidth.Truncate(name, avail, "...")
	}

	left := titleS.Render(prefix + name)
	gap := 2
	if r.width > 0 {
		if w := r.width - lipgloss.Width(left) - rightWidth; w > gap {
			gap = w
		}
	}
	title := left + strings.Repeat(" ", gap) + right

	lines := []string{title}

	var summary []string
	if l.Rocket.RocketName != "" {
		summary = append(summary, l.Rocket.RocketName)
	}
	if l.LaunchYear != "" {
		summary = append(summary, l.LaunchYear)
	}
	if len(summary) > 0 {
		lines = append(lines, listDescStyle.Render(strings.Join(summary, " · ")))
	}

	if expanded {
		details := l.DetailText()
		if details == "" {
			details = noDetails
		}
		wrapWidth := r.width - detailStyle.GetHorizontalFrameSize() - 1
		if wrapWidth > 10 {
			details = wordwrap.String(details, wrapWidth)
		}
		lines = append(lines, detailStyle.Render(details))
		if link := l.Link(); link != "" {
			lines = append(lines, linkStyle.Render(link))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
