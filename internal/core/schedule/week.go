package schedule

import "time"

// Week is the Monday through Sunday range surrounding a date.
type Week struct {
	FirstDay time.Time
	LastDay  time.Time
}

// WeekOf returns the week containing day.
func WeekOf(day time.Time) Week {
	day = DateOf(day)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	first := day.AddDate(0, 0, -offset)
	return Week{FirstDay: first, LastDay: first.AddDate(0, 0, 6)}
}

// Next returns the following week.
func (w Week) Next() Week {
	return WeekOf(w.FirstDay.AddDate(0, 0, 7))
}

// Previous returns the preceding week.
func (w Week) Previous() Week {
	return WeekOf(w.FirstDay.AddDate(0, 0, -7))
}

// Contains reports whether day falls inside the week.
func (w Week) Contains(day time.Time) bool {
	day = DateOf(day)
	return !day.Before(w.FirstDay) && !day.After(w.LastDay)
}

// Dates returns the seven dates of the week in order.
func (w Week) Dates() []time.Time {
	dates := make([]time.Time, 0, 7)
	for day := w.FirstDay; !day.After(w.LastDay); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}

// DateOf strips the clock from a time, leaving a UTC calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
