package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joelvanveluwen/tide/internal/models"
)

// TideSource produces the report for the current moment
type TideSource interface {
	Today(ctx context.Context) (*models.TideReport, error)
}

// tidesFetchedMsg is sent when the tide report has been built
type tidesFetchedMsg struct {
	report *models.TideReport
	err    error
}

// fetchTides builds the report off the UI loop
func fetchTides(ctx context.Context, source TideSource) tea.Cmd {
	return func() tea.Msg {
		report, err := source.Today(ctx)
		return tidesFetchedMsg{report: report, err: err}
	}
}
