package schedule

import (
	"testing"
	"time"
)

func TestDayOfMatchesWeekday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		weekday time.Weekday
		want    Days
	}{
		{time.Sunday, Sunday},
		{time.Monday, Monday},
		{time.Tuesday, Tuesday},
		{time.Wednesday, Wednesday},
		{time.Thursday, Thursday},
		{time.Friday, Friday},
		{time.Saturday, Saturday},
	}
	for _, tc := range cases {
		if got := DayOf(tc.weekday); got != tc.want {
			t.Fatalf("DayOf(%v) = %d, want %d", tc.weekday, got, tc.want)
		}
	}
}

func TestDaysRuns(t *testing.T) {
	t.Parallel()

	days := Wednesday | Thursday
	if !days.Runs(time.Wednesday) {
		t.Fatal("expected mask to run on Wednesday")
	}
	if days.Runs(time.Monday) {
		t.Fatal("expected mask not to run on Monday")
	}
	if NoDays.Runs(time.Monday) {
		t.Fatal("expected empty mask to run never")
	}
}

func TestDaysCount(t *testing.T) {
	t.Parallel()

	if got := WeekDays.Count(); got != 5 {
		t.Fatalf("WeekDays.Count() = %d, want 5", got)
	}
	if got := AllDays.Count(); got != 7 {
		t.Fatalf("AllDays.Count() = %d, want 7", got)
	}
	if got := NoDays.Count(); got != 0 {
		t.Fatalf("NoDays.Count() = %d, want 0", got)
	}
}

func TestDaysLabels(t *testing.T) {
	t.Parallel()

	labels := (Monday | Friday).Labels()
	if len(labels) != 2 || labels[0] != "Monday" || labels[1] != "Friday" {
		t.Fatalf("Labels() = %v, want [Monday Friday]", labels)
	}
}
