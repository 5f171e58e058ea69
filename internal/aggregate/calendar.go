package aggregate

import (
	"time"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// Buckets holds the minutes tracked in each calendar bucket.
type Buckets struct {
	Today     int
	Yesterday int
	ThisWeek  int
	LastWeek  int
}

// Ranges are the local calendar boundaries of the four buckets.
type Ranges struct {
	Today     model.DateRange
	Yesterday model.DateRange
	ThisWeek  model.DateRange
	LastWeek  model.DateRange
}

// CalendarRanges computes the bucket boundaries for now in its own location.
// This week runs up to now rather than to the end of the week.
func CalendarRanges(now time.Time) Ranges {
	today := timecalc.StartOfDay(now)
	tomorrow := timecalc.Midnight(now)
	yesterday := timecalc.StartOfDay(today.AddDate(0, 0, -1))
	thisMonday := timecalc.WeekStart(now)
	lastMonday := timecalc.StartOfDay(thisMonday.AddDate(0, 0, -7))

	return Ranges{
		Today:     model.DateRange{Start: today, End: tomorrow},
		Yesterday: model.DateRange{Start: yesterday, End: today},
		ThisWeek:  model.DateRange{Start: thisMonday, End: now},
		LastWeek:  model.DateRange{Start: lastMonday, End: thisMonday},
	}
}
