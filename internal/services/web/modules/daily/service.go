package daily

import (
	"context"
	"errors"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

const dateLayout = "2006-01-02"

type service struct {
	store storage.Store
}

// dailyPlan assembles the plan for the shown day: today when school runs,
// otherwise the next school day of the active year.
func (s service) dailyPlan(ctx context.Context, schoolID string, today time.Time) (templates.DailyView, error) {
	view := templates.DailyView{}

	year, found, err := s.activeYear(ctx, schoolID, today)
	if err != nil {
		return view, err
	}
	view.HasYear = found
	if !found {
		return view, nil
	}

	students, err := s.store.ListStudents(ctx, schoolID)
	if err != nil {
		return view, err
	}
	view.HasStudents = len(students) > 0
	if !view.HasStudents {
		return view, nil
	}

	breaks, err := s.store.ListSchoolBreaks(ctx, year.ID)
	if err != nil {
		return view, err
	}
	cal := year.Calendar(breaks)

	shown := schedule.DateOf(today)
	if !cal.IsSchoolDay(shown) {
		view.IsOffDay = true
		if next, ok := cal.NextSchoolDay(shown.AddDate(0, 0, 1)); ok {
			shown = next
		}
	}
	view.Date = shown.Format(dateLayout)

	for _, student := range students {
		row, err := s.studentPlan(ctx, student, year, cal, shown)
		if err != nil {
			return view, err
		}
		view.Students = append(view.Students, row)

		if !view.HasWorkToGrade {
			pending, err := s.store.ListPendingGradedWork(ctx, student.ID)
			if err != nil {
				return view, err
			}
			view.HasWorkToGrade = len(pending) > 0
		}
	}
	return view, nil
}

func (s service) activeYear(ctx context.Context, schoolID string, today time.Time) (storage.SchoolYear, bool, error) {
	years, err := s.store.ListSchoolYears(ctx, schoolID)
	if err != nil {
		return storage.SchoolYear{}, false, err
	}
	for _, year := range years {
		if year.Contains(today) {
			return year, true, nil
		}
	}
	return storage.SchoolYear{}, false, nil
}

func (s service) studentPlan(ctx context.Context, student storage.Student, year storage.SchoolYear, cal schedule.Calendar, shown time.Time) (templates.DailyStudent, error) {
	row := templates.DailyStudent{Name: student.FullName()}

	enrollment, err := s.store.GetEnrollmentByYear(ctx, student.ID, year.ID)
	if errors.Is(err, storage.ErrNotFound) {
		row.EnrollURL = routepath.StudentEnrollmentCreate(student.ID, year.ID)
		return row, nil
	}
	if err != nil {
		return row, err
	}
	row.Enrolled = true

	courses, err := s.store.ListCoursesByGradeLevel(ctx, enrollment.GradeLevelID)
	if err != nil {
		return row, err
	}
	for _, course := range courses {
		if !course.IsActive || !course.Days.Runs(shown.Weekday()) {
			continue
		}
		item, err := s.coursePlan(ctx, student.ID, enrollment.GradeLevelID, course, cal, shown)
		if err != nil {
			return row, err
		}
		row.Courses = append(row.Courses, item)
	}
	return row, nil
}

// coursePlan finds the task planned for the shown day. A course with no
// visible uncompleted task, or whose next task lands on a later day, shows
// as caught up.
func (s service) coursePlan(ctx context.Context, studentID, gradeLevelID string, course storage.Course, cal schedule.Calendar, shown time.Time) (templates.DailyCourse, error) {
	item := templates.DailyCourse{
		Name: course.Name,
		URL:  routepath.StudentCourse(studentID, course.ID),
		Done: true,
	}

	tasks, err := s.store.ListCourseTasks(ctx, course.ID)
	if err != nil {
		return item, err
	}
	done, lastCompleted, err := s.completionIndex(ctx, studentID, course.ID)
	if err != nil {
		return item, err
	}

	var next storage.CourseTask
	found := false
	for _, task := range tasks {
		if !task.VisibleTo(gradeLevelID) || done[task.ID] {
			continue
		}
		next = task
		found = true
		break
	}
	if !found {
		return item, nil
	}

	start := schedule.ForecastStart(cal, shown, lastCompleted)
	planned := schedule.PlannedDates(cal, course.Days, start, 1)
	if len(planned) == 0 || !planned[0].Equal(schedule.DateOf(shown)) {
		return item, nil
	}

	item.Done = false
	item.Task = next.Description
	item.TaskMinutes = next.DurationMinutes
	return item, nil
}

func (s service) completionIndex(ctx context.Context, studentID, courseID string) (map[string]bool, time.Time, error) {
	records, err := s.store.ListCourseworkByCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, time.Time{}, err
	}
	done := make(map[string]bool, len(records))
	var last time.Time
	for _, record := range records {
		done[record.CourseTaskID] = true
		if record.CompletedDate.After(last) {
			last = record.CompletedDate
		}
	}
	return done, last, nil
}
