package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/rpggio/liftlog/internal/domain/workout"
)

// UnknownWeek is the key assigned to entries whose date cannot be parsed.
const UnknownWeek = "unknown"

const day = 24 * time.Hour

// WeekKey maps a YYYY-MM-DD date to its ISO-8601 week key, "YYYY-Www".
//
// The week belongs to the year of its Thursday, so late-December dates can
// land in week 1 of the next year and early-January dates in week 52 or 53
// of the previous one.
func WeekKey(dateISO string) string {
	// Calendar dates are placed on a UTC midnight so day arithmetic never
	// crosses a DST transition.
	d, err := time.ParseInLocation(workout.DateLayout, dateISO, time.UTC)
	if err != nil {
		return UnknownWeek
	}

	thursday := weekThursday(d)
	year := thursday.Year()
	firstThursday := weekThursday(time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC))

	diff := thursday.Sub(firstThursday)
	week := 1 + int(math.Round(float64(diff)/float64(7*day)))
	return fmt.Sprintf("%d-W%02d", year, week)
}

// weekThursday returns the Thursday of the Monday-based week containing d.
func weekThursday(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Mon=0..Sun=6
	return d.AddDate(0, 0, 3-offset)
}
