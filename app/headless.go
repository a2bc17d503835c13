package app

import (
	"context"
	"fmt"
	"strconv"

	"launch-browser/browser"
	"launch-browser/launch"
	"launch-browser/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CollectLaunches drives the same paging state as the interactive list
// without a screen: each loaded page counts as a scroll to the bottom. It
// stops when a page comes back empty or after maxPages pages (0 means no
// limit). A failed page is returned as an error.
func CollectLaunches(ctx context.Context, fetcher Fetcher, maxPages int) (*browser.Browser, error) {
	b := browser.New()
	page := b.Page()

	for loaded := 0; ; {
		launches, err := fetcher.FetchPage(ctx, page)
		if err != nil {
			b.Failed(page, err)
			return b, fmt.Errorf("could not load page %d: %w", page, err)
		}
		b.Loaded(page, launches)
		loaded++
		log.InfoLog.Printf("page %d loaded with %d launches", page, len(launches))

		if maxPages > 0 && loaded >= maxPages {
			return b, nil
		}

		var ok bool
		if page, ok = b.ScrollBottomReached(); !ok {
			return b, nil
		}
	}
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderTable renders launches as a bordered table.
func RenderTable(launches []launch.Launch) string {
	rows := make([][]string, 0, len(launches))
	for _, l := range launches {
		name := l.Name()
		if !l.HasName() {
			name = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(l.FlightNumber),
			name,
			l.LaunchYear,
			l.Rocket.RocketName,
			l.LaunchSuccess.Label(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "MISSION", "YEAR", "ROCKET", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	return t.String()
}
