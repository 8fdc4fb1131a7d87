// Package schedule models the school calendar: which weekdays a course or
// school year runs, the week surrounding a date, and the projection of
// course tasks onto future school days.
package schedule

import "time"

// Days is a bitmask of weekdays on which something runs.
type Days uint8

const (
	Sunday Days = 1 << iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// NoDays runs never.
const NoDays Days = 0

// AllDays runs every day of the week.
const AllDays = Sunday | Monday | Tuesday | Wednesday | Thursday | Friday | Saturday

// WeekDays runs Monday through Friday, the default for new school years.
const WeekDays = Monday | Tuesday | Wednesday | Thursday | Friday

var dayOrder = []Days{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayLabels = map[Days]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// DayOf maps a time.Weekday onto its Days bit.
func DayOf(weekday time.Weekday) Days {
	return Days(1 << uint(weekday))
}

// Runs reports whether the mask includes the given weekday.
func (d Days) Runs(weekday time.Weekday) bool {
	return d&DayOf(weekday) != 0
}

// Count returns how many weekdays the mask includes.
func (d Days) Count() int {
	count := 0
	for _, day := range dayOrder {
		if d&day != 0 {
			count++
		}
	}
	return count
}

// Labels returns the names of the included weekdays in calendar order.
func (d Days) Labels() []string {
	var labels []string
	for _, day := range dayOrder {
		if d&day != 0 {
			labels = append(labels, dayLabels[day])
		}
	}
	return labels
}
