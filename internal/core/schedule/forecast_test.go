package schedule

import (
	"testing"
	"time"
)

func yearCalendar(days Days, breaks ...Break) Calendar {
	return Calendar{
		Start:  date(2020, time.January, 1),
		End:    date(2020, time.December, 31),
		Days:   days,
		Breaks: breaks,
	}
}

func TestForecastStartDefaultsToToday(t *testing.T) {
	t.Parallel()

	cal := yearCalendar(AllDays)
	today := date(2020, time.February, 10)
	if got := ForecastStart(cal, today, time.Time{}); !got.Equal(today) {
		t.Fatalf("ForecastStart = %v, want %v", got, today)
	}
}

func TestForecastStartWaitsForYearOpen(t *testing.T) {
	t.Parallel()

	cal := Calendar{
		Start: date(2021, time.January, 1),
		End:   date(2021, time.December, 31),
		Days:  AllDays,
	}
	today := date(2020, time.February, 10)
	if got := ForecastStart(cal, today, time.Time{}); !got.Equal(cal.Start) {
		t.Fatalf("ForecastStart = %v, want year start %v", got, cal.Start)
	}
}

func TestForecastStartSkipsPastLastCompletedDay(t *testing.T) {
	t.Parallel()

	cal := yearCalendar(AllDays)
	today := date(2020, time.February, 10)
	lastCompleted := today
	want := date(2020, time.February, 11)
	if got := ForecastStart(cal, today, lastCompleted); !got.Equal(want) {
		t.Fatalf("ForecastStart = %v, want %v", got, want)
	}
}

func TestForecastStartIgnoresOldCompletions(t *testing.T) {
	t.Parallel()

	cal := yearCalendar(AllDays)
	today := date(2020, time.February, 10)
	lastCompleted := date(2020, time.February, 3)
	if got := ForecastStart(cal, today, lastCompleted); !got.Equal(today) {
		t.Fatalf("ForecastStart = %v, want %v", got, today)
	}
}

func TestPlannedDatesWalkCourseDays(t *testing.T) {
	t.Parallel()

	// 2020-02-10 is a Monday, course runs Wednesday and Thursday.
	cal := yearCalendar(AllDays)
	from := date(2020, time.February, 10)
	dates := PlannedDates(cal, Wednesday|Thursday, from, 3)
	want := []time.Time{
		date(2020, time.February, 12),
		date(2020, time.February, 13),
		date(2020, time.February, 19),
	}
	if len(dates) != len(want) {
		t.Fatalf("len(dates) = %d, want %d", len(dates), len(want))
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Fatalf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestPlannedDatesSkipBreaks(t *testing.T) {
	t.Parallel()

	start := date(2020, time.January, 1)
	cal := yearCalendar(AllDays, Break{Start: start, End: start})
	dates := PlannedDates(cal, AllDays, start, 1)
	if len(dates) != 1 {
		t.Fatalf("len(dates) = %d, want 1", len(dates))
	}
	if want := date(2020, time.January, 2); !dates[0].Equal(want) {
		t.Fatalf("dates[0] = %v, want %v", dates[0], want)
	}
}

func TestPlannedDatesEmptyWhenCourseNotRunning(t *testing.T) {
	t.Parallel()

	cal := yearCalendar(AllDays)
	if dates := PlannedDates(cal, NoDays, cal.Start, 5); dates != nil {
		t.Fatalf("expected no dates for a course running no days, got %v", dates)
	}
}

func TestPlannedDatesStopAtYearEnd(t *testing.T) {
	t.Parallel()

	cal := Calendar{
		Start: date(2020, time.December, 28),
		End:   date(2020, time.December, 31),
		Days:  AllDays,
	}
	dates := PlannedDates(cal, AllDays, cal.Start, 10)
	if len(dates) != 4 {
		t.Fatalf("len(dates) = %d, want 4", len(dates))
	}
}

func TestNextCourseDay(t *testing.T) {
	t.Parallel()

	cal := yearCalendar(AllDays)
	from := date(2020, time.February, 10)
	if got := NextCourseDay(cal, Friday, from); !got.Equal(date(2020, time.February, 14)) {
		t.Fatalf("NextCourseDay = %v, want Friday 2020-02-14", got)
	}
	if got := NextCourseDay(cal, NoDays, from); !got.IsZero() {
		t.Fatalf("NextCourseDay = %v, want zero time", got)
	}
}

func TestCalendarIsSchoolDay(t *testing.T) {
	t.Parallel()

	start := date(2020, time.January, 6)
	cal := Calendar{
		Start:  start,
		End:    date(2020, time.June, 30),
		Days:   WeekDays,
		Breaks: []Break{{Start: date(2020, time.March, 16), End: date(2020, time.March, 20)}},
	}
	if !cal.IsSchoolDay(date(2020, time.January, 6)) {
		t.Fatal("expected Monday inside the year to be a school day")
	}
	if cal.IsSchoolDay(date(2020, time.January, 4)) {
		t.Fatal("expected a date before the year to not be a school day")
	}
	if cal.IsSchoolDay(date(2020, time.January, 11)) {
		t.Fatal("expected Saturday to not be a school day")
	}
	if cal.IsSchoolDay(date(2020, time.March, 17)) {
		t.Fatal("expected a break day to not be a school day")
	}
}

func TestCalendarNextSchoolDay(t *testing.T) {
	t.Parallel()

	cal := yearCalendar(WeekDays, Break{
		Start: date(2020, time.February, 10),
		End:   date(2020, time.February, 12),
	})

	if got, ok := cal.NextSchoolDay(date(2020, time.February, 7)); !ok || !got.Equal(date(2020, time.February, 7)) {
		t.Fatalf("NextSchoolDay = %v ok=%v, want Friday 2020-02-07", got, ok)
	}
	if got, ok := cal.NextSchoolDay(date(2020, time.February, 8)); !ok || !got.Equal(date(2020, time.February, 13)) {
		t.Fatalf("NextSchoolDay = %v ok=%v, want Thursday 2020-02-13 after the weekend and break", got, ok)
	}
	if _, ok := cal.NextSchoolDay(date(2021, time.January, 1)); ok {
		t.Fatal("expected no school day after the year ends")
	}
}
