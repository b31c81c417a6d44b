package sun

import (
	"time"

	"github.com/joelvanveluwen/tide/internal/models"
	"github.com/keep94/sunrise"
)

// Times holds sunrise and sunset for one calendar day
type Times struct {
	Sunrise time.Time
	Sunset  time.Time
}

// On returns sunrise and sunset at loc for the calendar day of day, in
// day's time zone. It returns false when no sunrise/sunset pair falls on
// that calendar day, which happens when day's zone is far from loc's.
func On(day time.Time, loc models.Location) (Times, bool) {
	var s sunrise.Sunrise
	s.Around(loc.Latitude, loc.Longitude, day)

	// Around picks the nearest sunrise, which can fall on a neighbouring day
	for i := 0; i < 3 && !sameDay(day, s.Sunrise()); i++ {
		if s.Sunrise().Before(day) {
			s.AddDays(1)
		} else {
			s.AddDays(-1)
		}
	}

	times := Times{
		Sunrise: s.Sunrise().In(day.Location()),
		Sunset:  s.Sunset().In(day.Location()),
	}
	if !sameDay(day, times.Sunrise) || !sameDay(day, times.Sunset) {
		return Times{}, false
	}
	return times, true
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.YearDay() == b.YearDay() && a.Year() == b.Year()
}
