package teachers

import (
	"context"
	"errors"
	"net/url"
	"strings"
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

// studentCourses pairs an enrolled student with the active courses of their
// grade level.
type studentCourses struct {
	student      storage.Student
	gradeLevelID string
	courses      []storage.Course
}

// weekChecklist projects every enrolled student's courses onto the school
// days of the week around day. Past days show the work that was completed,
// today and later show what the forecast plans.
func (s service) weekChecklist(ctx context.Context, schoolID string, day, today time.Time) (templates.ChecklistView, error) {
	week := schedule.WeekOf(day)
	view := templates.ChecklistView{
		WeekStart:   week.FirstDay.Format(dateLayout),
		PrevURL:     routepath.Checklist(week.Previous().FirstDay),
		NextURL:     routepath.Checklist(week.Next().FirstDay),
		ThisWeekURL: routepath.Checklist(today),
	}

	year, found, err := s.yearFor(ctx, schoolID, day)
	if err != nil || !found {
		return view, err
	}
	view.HasYear = true
	view.EditURL = routepath.ChecklistEdit(day)

	pairs, err := s.enrolledCourses(ctx, schoolID, year.ID)
	if err != nil {
		return view, err
	}
	excluded, err := s.exclusions(ctx, year.ID)
	if err != nil {
		return view, err
	}
	breaks, err := s.store.ListSchoolBreaks(ctx, year.ID)
	if err != nil {
		return view, err
	}
	cal := year.Calendar(breaks)

	agendas := make(map[string]map[string]string)
	for _, pair := range pairs {
		for _, course := range pair.courses {
			if excluded[course.ID] {
				continue
			}
			agenda, err := s.courseAgenda(ctx, pair, course, cal, today)
			if err != nil {
				return view, err
			}
			agendas[pair.student.ID+"/"+course.ID] = agenda
		}
	}

	for _, date := range week.Dates() {
		if !cal.IsSchoolDay(date) {
			continue
		}
		dateKey := date.Format(dateLayout)
		column := templates.ChecklistDay{Date: dateKey}
		for _, pair := range pairs {
			entry := templates.ChecklistStudent{Name: pair.student.FullName()}
			for _, course := range pair.courses {
				if excluded[course.ID] || !course.Days.Runs(date.Weekday()) {
					continue
				}
				entry.Courses = append(entry.Courses, templates.ChecklistCourse{
					Name: course.Name,
					Task: agendas[pair.student.ID+"/"+course.ID][dateKey],
				})
			}
			if len(entry.Courses) > 0 {
				column.Students = append(column.Students, entry)
			}
		}
		if len(column.Students) > 0 {
			view.Days = append(view.Days, column)
		}
	}
	return view, nil
}

// editForm lists each enrolled student's courses with the excluded ones
// unchecked.
func (s service) editForm(ctx context.Context, schoolID string, year storage.SchoolYear, day time.Time) (templates.ChecklistEditView, error) {
	view := templates.ChecklistEditView{
		WeekStart: schedule.WeekOf(day).FirstDay.Format(dateLayout),
		ActionURL: routepath.ChecklistEdit(day),
	}

	pairs, err := s.enrolledCourses(ctx, schoolID, year.ID)
	if err != nil {
		return view, err
	}
	excluded, err := s.exclusions(ctx, year.ID)
	if err != nil {
		return view, err
	}

	for _, pair := range pairs {
		entry := templates.ChecklistEditStudent{ID: pair.student.ID, Name: pair.student.FullName()}
		for _, course := range pair.courses {
			entry.Courses = append(entry.Courses, templates.CheckOption{
				ID:      course.ID,
				Label:   course.Name,
				Checked: !excluded[course.ID],
			})
		}
		if len(entry.Courses) > 0 {
			view.Students = append(view.Students, entry)
		}
	}
	return view, nil
}

// saveExclusions excludes every course the form offered but left unchecked.
// Exclusions for courses the form never rendered, such as courses of a grade
// level with no enrolled students, are preserved.
func (s service) saveExclusions(ctx context.Context, schoolID string, year storage.SchoolYear, form url.Values) error {
	pairs, err := s.enrolledCourses(ctx, schoolID, year.ID)
	if err != nil {
		return err
	}

	included := make(map[string]bool)
	for key, values := range form {
		if !strings.HasPrefix(key, "courses-") {
			continue
		}
		for _, courseID := range values {
			included[courseID] = true
		}
	}

	offered := make(map[string]bool)
	var excluded []string
	seen := make(map[string]bool)
	for _, pair := range pairs {
		for _, course := range pair.courses {
			offered[course.ID] = true
			if !included[course.ID] && !seen[course.ID] {
				excluded = append(excluded, course.ID)
				seen[course.ID] = true
			}
		}
	}

	current, err := s.store.ListChecklistExclusions(ctx, year.ID)
	if err != nil {
		return err
	}
	for _, courseID := range current {
		if !offered[courseID] && !seen[courseID] {
			excluded = append(excluded, courseID)
			seen[courseID] = true
		}
	}
	return s.store.ReplaceChecklistExclusions(ctx, year.ID, excluded)
}

func (s service) yearFor(ctx context.Context, schoolID string, day time.Time) (storage.SchoolYear, bool, error) {
	years, err := s.store.ListSchoolYears(ctx, schoolID)
	if err != nil {
		return storage.SchoolYear{}, false, err
	}
	for _, year := range years {
		if year.Contains(day) {
			return year, true, nil
		}
	}
	return storage.SchoolYear{}, false, nil
}

func (s service) enrolledCourses(ctx context.Context, schoolID string, yearID string) ([]studentCourses, error) {
	students, err := s.store.ListStudents(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	var pairs []studentCourses
	for _, student := range students {
		enrollment, err := s.store.GetEnrollmentByYear(ctx, student.ID, yearID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		courses, err := s.store.ListCoursesByGradeLevel(ctx, enrollment.GradeLevelID)
		if err != nil {
			return nil, err
		}
		pair := studentCourses{student: student, gradeLevelID: enrollment.GradeLevelID}
		for _, course := range courses {
			if course.IsActive {
				pair.courses = append(pair.courses, course)
			}
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func (s service) exclusions(ctx context.Context, yearID string) (map[string]bool, error) {
	courseIDs, err := s.store.ListChecklistExclusions(ctx, yearID)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool, len(courseIDs))
	for _, courseID := range courseIDs {
		excluded[courseID] = true
	}
	return excluded, nil
}

// courseAgenda maps dates to task descriptions for one student and course:
// completed work lands on the date it was done, uncompleted visible tasks on
// their forecast dates.
func (s service) courseAgenda(ctx context.Context, pair studentCourses, course storage.Course, cal schedule.Calendar, today time.Time) (map[string]string, error) {
	tasks, err := s.store.ListCourseTasks(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	descriptions := make(map[string]string, len(tasks))
	for _, task := range tasks {
		descriptions[task.ID] = task.Description
	}

	records, err := s.store.ListCourseworkByCourse(ctx, pair.student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	agenda := make(map[string]string)
	done := make(map[string]bool, len(records))
	var lastCompleted time.Time
	for _, record := range records {
		done[record.CourseTaskID] = true
		if record.CompletedDate.After(lastCompleted) {
			lastCompleted = record.CompletedDate
		}
		agenda[record.CompletedDate.Format(dateLayout)] = descriptions[record.CourseTaskID]
	}

	var pending []storage.CourseTask
	for _, task := range tasks {
		if task.VisibleTo(pair.gradeLevelID) && !done[task.ID] {
			pending = append(pending, task)
		}
	}
	start := schedule.ForecastStart(cal, today, lastCompleted)
	for i, date := range schedule.PlannedDates(cal, course.Days, start, len(pending)) {
		key := date.Format(dateLayout)
		if _, taken := agenda[key]; !taken {
			agenda[key] = pending[i].Description
		}
	}
	return agenda, nil
}
