package willyweather

import (
	"fmt"
	"strings"
	"time"

	"github.com/joelvanveluwen/tide/internal/markup"
	"github.com/joelvanveluwen/tide/internal/models"
)

// Time layouts tried in order, e.g. "6:42 AM" then "6:42AM"
var tideTimeLayouts = []string{"3:04 PM", "3:04PM"}

var (
	daySection  = markup.All(markup.Element("li"), markup.Class("day"))
	highPoint   = markup.Class("point-high")
	lowPoint    = markup.Class("point-low")
	tidePoint   = markup.All(markup.Element("li"), markup.Any(highPoint, lowPoint))
	timeLabel   = markup.Element("h3")
	heightLabel = markup.Element("span")
)

// ParseTides extracts today's tide events from a tide page. Today is the
// first day section of the page; parsed times are placed on now's date.
// Points missing a time or height are skipped. A page without a day
// section returns ErrNoTideData.
func ParseTides(raw string, now time.Time) ([]models.TideEvent, error) {
	doc, err := markup.ParseString(raw)
	if err != nil {
		return nil, err
	}

	today, ok := doc.Find(daySection)
	if !ok {
		return nil, ErrNoTideData
	}

	points := today.FindAll(tidePoint)
	events := make([]models.TideEvent, 0, len(points))
	for _, point := range points {
		event, ok := parseTidePoint(point, now)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// parseTidePoint reads one tide point. It returns false when the point has
// no time heading or no height.
func parseTidePoint(point *markup.Node, now time.Time) (models.TideEvent, bool) {
	tideType := models.TideLow
	if highPoint(point) {
		tideType = models.TideHigh
	}

	timeElem, ok := point.Find(timeLabel)
	if !ok {
		return models.TideEvent{}, false
	}
	heightElem, ok := point.Find(heightLabel)
	if !ok {
		return models.TideEvent{}, false
	}

	event := models.TideEvent{
		Label:  timeElem.Text(),
		Height: heightElem.Text(),
		Type:   tideType,
	}
	if t, err := parseTideTime(event.Label, now); err == nil {
		event.Time = t
	}
	return event, true
}

// parseTideTime parses a 12-hour clock label onto now's date
func parseTideTime(label string, now time.Time) (time.Time, error) {
	// strings.Fields also splits on non-breaking spaces
	value := strings.Join(strings.Fields(strings.ToUpper(label)), " ")
	for _, layout := range tideTimeLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("time %q does not match %s", label, strings.Join(tideTimeLayouts, " or "))
}
