package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joelvanveluwen/tide/internal/models"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching and parsing the tide page
	StateDisplay                 // Report rendered
	StateError                   // Nothing to show
)

// Model shows a spinner while the report is built, prints it once and quits
type Model struct {
	ctx       context.Context
	state     AppState
	location  models.Location
	source    TideSource
	presenter Presenter
	spinner   spinner.Model

	report *models.TideReport
	err    error
}

// NewModel creates the loading model for location
func NewModel(ctx context.Context, location models.Location, source TideSource, presenter Presenter) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		ctx:       ctx,
		state:     StateLoading,
		location:  location,
		source:    source,
		presenter: presenter,
		spinner:   s,
	}
}

// Init starts the spinner and the fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchTides(m.ctx, m.source))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tidesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, tea.Quit
		}
		m.report = msg.report
		m.state = StateDisplay
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.err = context.Canceled
			m.state = StateError
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	switch m.state {
	case StateDisplay:
		return m.presenter.Render(m.report)
	case StateError:
		// reported on stderr by the caller once the program exits
		return ""
	}

	return fmt.Sprintf("%s %s\n", m.spinner.View(),
		mutedStyle.Render(fmt.Sprintf("Fetching tide data for %s...", m.location.Name)))
}

// Report returns the rendered report, nil until StateDisplay
func (m Model) Report() *models.TideReport {
	return m.report
}

// Err returns why no report was shown, nil on success
func (m Model) Err() error {
	return m.err
}
