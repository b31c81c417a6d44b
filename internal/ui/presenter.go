package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/joelvanveluwen/tide/internal/forecast"
	"github.com/joelvanveluwen/tide/internal/models"
	"github.com/joelvanveluwen/tide/internal/willyweather"
)

const progressSegments = 20

// Presenter turns a finished report, or the error that prevented one, into
// terminal output. Implementations keep no state between calls.
type Presenter interface {
	Render(report *models.TideReport) string
	RenderError(err error) string
}

// TerminalPresenter renders reports with lipgloss styling
type TerminalPresenter struct {
	bar progress.Model
}

// NewTerminalPresenter creates the default presenter
func NewTerminalPresenter() *TerminalPresenter {
	return &TerminalPresenter{
		bar: progress.New(
			progress.WithWidth(progressSegments),
			progress.WithoutPercentage(),
			progress.WithSolidFill(string(colorPrimary)),
		),
	}
}

// Render draws the tide panel, the next high tide summary and, when the
// current tide could be interpolated, its progress.
func (p *TerminalPresenter) Render(report *models.TideReport) string {
	sections := []string{
		"",
		p.renderTidePane(report),
		"",
		p.renderNextHigh(report),
	}

	if report.Status != nil {
		sections = append(sections, "", p.renderStatus(report.Status))
	}

	if !report.Sunrise.IsZero() && !report.Sunset.IsZero() {
		sections = append(sections, "", mutedStyle.Render(fmt.Sprintf("Sunrise %s • Sunset %s",
			report.Sunrise.Format("3:04 PM"),
			report.Sunset.Format("3:04 PM"))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderNextHigh renders the summary line under the panel
func (p *TerminalPresenter) renderNextHigh(report *models.TideReport) string {
	next, ok := report.NextHighTide()
	if !ok {
		return warningStyle.Render("No more high tides today. Check tomorrow!")
	}
	return labelStyle.Render("Next High Tide: ") +
		successStyle.Bold(true).Render(next.Label) +
		heightStyle.Render(fmt.Sprintf(" (%s)", next.Height))
}

// renderStatus renders the interpolated height and a bar from the previous
// tide to the next one
func (p *TerminalPresenter) renderStatus(status *models.TideStatus) string {
	direction, target := "falling", "low"
	if status.Direction == models.TideRising {
		direction, target = "rising", "high"
	}

	now := labelStyle.Render("Now: ") +
		heightStyle.Render(fmt.Sprintf("%.2fm", status.CurrentHeight)) +
		valueStyle.Render(" and "+direction)

	bar := fmt.Sprintf("%s %s %s",
		mutedStyle.Render(status.Prev.Label),
		p.bar.ViewAs(status.Progress),
		valueStyle.Render(status.Next.Label))

	remaining := mutedStyle.Render(fmt.Sprintf("%s until %s tide", FormatRemaining(status.HoursRemaining), target))

	return strings.Join([]string{now, bar, remaining}, "\n")
}

// RenderError describes why there is nothing to show
func (p *TerminalPresenter) RenderError(err error) string {
	var lines []string

	var fetchErr *forecast.FetchError
	switch {
	case errors.As(err, &fetchErr):
		lines = append(lines, "✗ Error fetching tide data: "+fetchErr.Err.Error())
	case errors.Is(err, willyweather.ErrNoTideData):
		lines = append(lines,
			"✗ Could not find tide data on the page.",
			"✗ Failed to parse tide data. The website structure may have changed.")
	case errors.Is(err, forecast.ErrNoTideEvents):
		lines = append(lines, "✗ Failed to parse tide data. The website structure may have changed.")
	default:
		lines = append(lines, "✗ "+err.Error())
	}

	for i, line := range lines {
		lines[i] = errorStyle.Render(line)
	}
	return strings.Join(lines, "\n") + "\n"
}

// FormatRemaining formats fractional hours as "2h 5m", or "45m" under an hour
func FormatRemaining(hours float64) string {
	minutes := int(math.Round(hours * 60))
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
