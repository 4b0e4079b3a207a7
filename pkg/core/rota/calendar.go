package rota

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Weekend is one scheduling period: an optional Saturday and an optional Sunday
type Weekend struct {
	Index    int
	Saturday *time.Time
	Sunday   *time.Time
}

// ReferenceDate returns the Sunday if present, otherwise the Saturday.
// The second return value is false when the weekend has neither day.
func (w Weekend) ReferenceDate() (time.Time, bool) {
	if w.Sunday != nil {
		return *w.Sunday, true
	}
	if w.Saturday != nil {
		return *w.Saturday, true
	}
	return time.Time{}, false
}

// Keys returns the current and previous week keys for the weekend
func (w Weekend) Keys() (current WeekKey, previous WeekKey, ok bool) {
	ref, ok := w.ReferenceDate()
	if !ok {
		return WeekKey{}, WeekKey{}, false
	}
	return WeekKeyOf(ref), WeekKeyOf(ref.AddDate(0, 0, -7)), true
}

// Day returns the date for the given weekday, or nil if the weekend lacks it
func (w Weekend) Day(day time.Weekday) *time.Time {
	switch day {
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return nil
	}
}

// EnumerateWeekends lists the weekends between start and end (inclusive).
//
// Saturdays and Sundays are enumerated separately and paired by position:
// weekend i holds the i-th Saturday and the i-th Sunday of the range. When the
// range starts on a Sunday, the i-th Saturday falls six days after the i-th
// Sunday. The week key is always taken from the Sunday when present.
func EnumerateWeekends(start, end time.Time) ([]Weekend, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	saturdays, err := weekdaysBetween(start, end, rrule.SA)
	if err != nil {
		return nil, err
	}
	sundays, err := weekdaysBetween(start, end, rrule.SU)
	if err != nil {
		return nil, err
	}

	count := max(len(saturdays), len(sundays))
	weekends := make([]Weekend, 0, count)
	for i := 0; i < count; i++ {
		weekend := Weekend{Index: i}
		if i < len(saturdays) {
			weekend.Saturday = &saturdays[i]
		}
		if i < len(sundays) {
			weekend.Sunday = &sundays[i]
		}
		weekends = append(weekends, weekend)
	}

	return weekends, nil
}

// weekdaysBetween returns every occurrence of day within [start, end]
func weekdaysBetween(start, end time.Time, day rrule.Weekday) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{day},
		Dtstart:   start,
		Until:     end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly recurrence: %w", err)
	}

	occurrences := rule.All()
	dates := make([]time.Time, len(occurrences))
	for i, occurrence := range occurrences {
		dates[i] = truncateToDate(occurrence)
	}
	return dates, nil
}

// truncateToDate drops the time of day, keeping the calendar date in UTC
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
