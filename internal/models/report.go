package models

import "time"

// TideReport is everything shown for a single run. It is built once from
// the fetched page and a single reading of the clock.
type TideReport struct {
	Location Location
	Now      time.Time
	Tides    TideData

	NextHigh    int // index into Tides.Events, valid when HasNextHigh
	HasNextHigh bool
	Status      *TideStatus // nil when the current tide cannot be interpolated

	Sunrise time.Time // zero when unknown
	Sunset  time.Time
}

// NextHighTide returns the next high tide event, if any
func (r *TideReport) NextHighTide() (TideEvent, bool) {
	if !r.HasNextHigh || r.NextHigh < 0 || r.NextHigh >= len(r.Tides.Events) {
		return TideEvent{}, false
	}
	return r.Tides.Events[r.NextHigh], true
}
