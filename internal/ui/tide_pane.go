package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joelvanveluwen/tide/internal/models"
)

// column widths: indicator, time, type, height, marker
var tideColumnWidths = []int{2, 10, 6, 8, 11}

// renderTidePane renders the titled panel listing the day's tides
func (p *TerminalPresenter) renderTidePane(report *models.TideReport) string {
	title := titleStyle.Render(report.Location.Name + " Tides - " + report.Now.Format("Monday, Jan 02 2006"))

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(1)
			if col >= 0 && col < len(tideColumnWidths) {
				style = style.Width(tideColumnWidths[col] + 1)
			}
			return style
		})

	for i, event := range report.Tides.Events {
		next := report.HasNextHigh && i == report.NextHigh
		t.Row(tideRow(event, next)...)
	}

	return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", t.Render()))
}

// tideRow renders one tide as table cells
func tideRow(event models.TideEvent, next bool) []string {
	indicator, marker := "", ""
	if next {
		indicator = indicatorStyle.Render("→")
		marker = markerStyle.Render("← NEXT HIGH")
	}

	kind := mutedStyle.Render("low")
	if event.Type == models.TideHigh {
		kind = highStyle.Render("HIGH")
	}

	return []string{
		indicator,
		valueStyle.Render(event.Label),
		kind,
		heightStyle.Render(event.Height),
		marker,
	}
}
