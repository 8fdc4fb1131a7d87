package schedule

import "time"

// Break is a range of dates on which school pauses.
type Break struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the break.
func (b Break) Contains(day time.Time) bool {
	day = DateOf(day)
	return !day.Before(DateOf(b.Start)) && !day.After(DateOf(b.End))
}

// Calendar is the running shape of one school year.
type Calendar struct {
	Start  time.Time
	End    time.Time
	Days   Days
	Breaks []Break
}

// Contains reports whether day falls inside the school year.
func (c Calendar) Contains(day time.Time) bool {
	day = DateOf(day)
	return !day.Before(DateOf(c.Start)) && !day.After(DateOf(c.End))
}

// OnBreak reports whether day falls inside any school break.
func (c Calendar) OnBreak(day time.Time) bool {
	for _, b := range c.Breaks {
		if b.Contains(day) {
			return true
		}
	}
	return false
}

// IsSchoolDay reports whether the school year runs on day.
func (c Calendar) IsSchoolDay(day time.Time) bool {
	return c.Contains(day) && c.Days.Runs(day.Weekday()) && !c.OnBreak(day)
}

// NextSchoolDay returns the first school day on or after from, or false when
// the year ends first.
func (c Calendar) NextSchoolDay(from time.Time) (time.Time, bool) {
	end := DateOf(c.End)
	for day := DateOf(from); !day.After(end); day = day.AddDate(0, 0, 1) {
		if c.IsSchoolDay(day) {
			return day, true
		}
	}
	return time.Time{}, false
}
