package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TideType represents whether a tide is high or low
type TideType string

const (
	TideHigh TideType = "HIGH"
	TideLow  TideType = "LOW"
)

// TideDirection is the direction the water is moving between two tides
type TideDirection string

const (
	TideRising  TideDirection = "RISING"
	TideFalling TideDirection = "FALLING"
)

// TideEvent represents a single high or low tide occurrence.
// Label and Height are kept exactly as published so they can be shown even
// when they cannot be parsed.
type TideEvent struct {
	Label  string    // e.g. "6:42 AM"
	Time   time.Time // zero when Label could not be parsed
	Height string    // e.g. "1.42m"
	Type   TideType
}

// HasTime reports whether the event carries a parsed time
func (e TideEvent) HasTime() bool {
	return !e.Time.IsZero()
}

// TideStatus describes the water between the two tides bracketing a moment
type TideStatus struct {
	CurrentHeight  float64 // meters
	Direction      TideDirection
	Progress       float64 // 0..1 through the interval Prev -> Next
	Prev           TideEvent
	Next           TideEvent
	HoursRemaining float64
}

// TideData contains the tide events published for one day
type TideData struct {
	Location string
	Date     time.Time
	Events   []TideEvent // Document order
}

// NextHighTide returns the index of the first high tide strictly after now.
// Events without a parsed time never match.
func (td *TideData) NextHighTide(now time.Time) (int, bool) {
	for i, event := range td.Events {
		if event.Type == TideHigh && event.HasTime() && event.Time.After(now) {
			return i, true
		}
	}
	return 0, false
}

// Status interpolates the water height at now between the bracketing
// events. It returns false when now is outside the day's known events or
// the heights of the bracketing pair are not numeric.
func (td *TideData) Status(now time.Time) (*TideStatus, bool) {
	if len(td.Events) < 2 {
		return nil, false
	}

	var prev, next *TideEvent
	for i := range td.Events {
		event := &td.Events[i]
		if !event.HasTime() {
			continue
		}
		if event.Time.After(now) {
			next = event
			break
		}
		prev = event
	}
	if prev == nil || next == nil {
		return nil, false
	}

	var progress float64
	if span := next.Time.Sub(prev.Time); span > 0 {
		progress = float64(now.Sub(prev.Time)) / float64(span)
	}

	prevHeight, err := ParseHeight(prev.Height)
	if err != nil {
		return nil, false
	}
	nextHeight, err := ParseHeight(next.Height)
	if err != nil {
		return nil, false
	}

	direction := TideFalling
	if next.Type == TideHigh {
		direction = TideRising
	}

	return &TideStatus{
		CurrentHeight:  prevHeight + (nextHeight-prevHeight)*progress,
		Direction:      direction,
		Progress:       progress,
		Prev:           *prev,
		Next:           *next,
		HoursRemaining: next.Time.Sub(now).Hours(),
	}, true
}

// ParseHeight converts a height label such as "1.42m" or "0.8 m" to meters
func ParseHeight(label string) (float64, error) {
	value := strings.TrimRightFunc(strings.TrimSpace(label), func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	height, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("height %q is not numeric: %w", label, err)
	}
	return height, nil
}
