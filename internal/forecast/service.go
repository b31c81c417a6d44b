package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joelvanveluwen/tide/internal/models"
	"github.com/joelvanveluwen/tide/internal/sun"
	"github.com/joelvanveluwen/tide/internal/willyweather"
)

// Service turns the published tide page into a report for right now
type Service struct {
	fetcher  willyweather.PageFetcher
	location models.Location
	clock    func() time.Time
	log      *slog.Logger
}

// NewService creates a service reading the tide page for location
func NewService(fetcher willyweather.PageFetcher, location models.Location, log *slog.Logger) *Service {
	return &Service{
		fetcher:  fetcher,
		location: location,
		clock:    time.Now,
		log:      log,
	}
}

// FetchError wraps a failure to retrieve the tide page
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetching tide data: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// Today fetches the tide page and builds the report. The clock is read
// once, after the page arrives, and that instant is used for everything.
func (s *Service) Today(ctx context.Context) (*models.TideReport, error) {
	raw, err := s.fetcher.FetchPage(ctx)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	s.log.Debug("fetched tide page", "location", s.location.Name, "bytes", len(raw))

	return s.Build(raw, s.clock())
}

// Build parses raw and derives the next high tide and current status at now
func (s *Service) Build(raw string, now time.Time) (*models.TideReport, error) {
	events, err := willyweather.ParseTides(raw, now)
	if err != nil {
		return nil, fmt.Errorf("parsing tide data: %w", err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("parsing tide data: %w", ErrNoTideEvents)
	}

	report := &models.TideReport{
		Location: s.location,
		Now:      now,
		Tides: models.TideData{
			Location: s.location.Name,
			Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			Events:   events,
		},
	}

	report.NextHigh, report.HasNextHigh = report.Tides.NextHighTide(now)
	if status, ok := report.Tides.Status(now); ok {
		report.Status = status
	}

	if times, ok := sun.On(now, s.location); ok {
		report.Sunrise, report.Sunset = times.Sunrise, times.Sunset
	}

	s.log.Debug("built tide report",
		"events", len(events),
		"untimed", countUntimed(events),
		"next_high", report.HasNextHigh,
		"status", report.Status != nil)

	return report, nil
}

func countUntimed(events []models.TideEvent) int {
	n := 0
	for _, e := range events {
		if !e.HasTime() {
			n++
		}
	}
	return n
}
