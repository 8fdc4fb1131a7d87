package schedule

import "time"

// ForecastStart returns the first date from which uncompleted tasks may be
// planned. Planning never starts before the school year opens, never in the
// past, and never on or before the day the student last completed work for
// the course.
func ForecastStart(cal Calendar, today, lastCompleted time.Time) time.Time {
	start := DateOf(today)
	if yearStart := DateOf(cal.Start); start.Before(yearStart) {
		start = yearStart
	}
	if !lastCompleted.IsZero() {
		if next := DateOf(lastCompleted).AddDate(0, 0, 1); start.Before(next) {
			start = next
		}
	}
	return start
}

// PlannedDates returns up to count dates on which a course runs, starting at
// from and walking forward one school day per task. Break days and weekdays
// outside the course mask are skipped. The slice is shorter than count when
// the school year ends first, and empty when the course runs no days.
func PlannedDates(cal Calendar, courseDays Days, from time.Time, count int) []time.Time {
	if count <= 0 || courseDays == NoDays {
		return nil
	}

	var dates []time.Time
	end := DateOf(cal.End)
	for day := DateOf(from); !day.After(end); day = day.AddDate(0, 0, 1) {
		if !cal.Contains(day) || cal.OnBreak(day) || !courseDays.Runs(day.Weekday()) {
			continue
		}
		dates = append(dates, day)
		if len(dates) == count {
			break
		}
	}
	return dates
}

// NextCourseDay returns the first date on or after from on which the course
// runs, or the zero time when the school year ends first.
func NextCourseDay(cal Calendar, courseDays Days, from time.Time) time.Time {
	dates := PlannedDates(cal, courseDays, from, 1)
	if len(dates) == 0 {
		return time.Time{}
	}
	return dates[0]
}
