package students

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/platform/id"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

type service struct {
	store storage.Store
}

// roster lists every student with their standing in the school year that
// covers today.
func (s service) roster(ctx context.Context, schoolID string, today time.Time) (templates.StudentsView, error) {
	view := templates.StudentsView{}

	students, err := s.store.ListStudents(ctx, schoolID)
	if err != nil {
		return view, err
	}
	year, hasYear, err := s.activeYear(ctx, schoolID, today)
	if err != nil {
		return view, err
	}

	for _, student := range students {
		row := templates.StudentRow{Name: student.FullName()}
		if hasYear {
			_, err := s.store.GetEnrollmentByYear(ctx, student.ID, year.ID)
			switch {
			case err == nil:
				row.YearName = templates.SchoolYearLabel(year.StartDate, year.EndDate)
			case errors.Is(err, storage.ErrNotFound):
				row.EnrollURL = routepath.StudentEnrollmentCreate(student.ID, year.ID)
			default:
				return view, err
			}
		}
		view.Students = append(view.Students, row)
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

// coursePage builds the task schedule one student sees for one course.
// Uncompleted visible tasks take successive planned dates; completed tasks
// keep their completion date and only appear when showCompleted is set.
func (s service) coursePage(ctx context.Context, schoolID string, student storage.Student, course storage.Course, today time.Time, showCompleted bool) (templates.StudentCourseView, error) {
	selfURL := routepath.StudentCourse(student.ID, course.ID)
	toggleURL := selfURL
	if showCompleted {
		selfURL += "?" + routepath.StudentCourseCompletedParam + "=1"
	} else {
		toggleURL += "?" + routepath.StudentCourseCompletedParam + "=1"
	}
	view := templates.StudentCourseView{
		StudentName:   student.FullName(),
		CourseName:    course.Name,
		ShowCompleted: showCompleted,
		ToggleURL:     toggleURL,
		AddTaskURL:    routepath.CourseTaskCreate(course.ID),
	}

	enrollment, err := s.store.GetEnrollmentByYear(ctx, student.ID, course.SchoolYearID)
	if errors.Is(err, storage.ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return view, err
	}

	year, err := s.store.GetSchoolYear(ctx, course.SchoolYearID, schoolID)
	if err != nil {
		return view, err
	}
	breaks, err := s.store.ListSchoolBreaks(ctx, year.ID)
	if err != nil {
		return view, err
	}
	cal := year.Calendar(breaks)

	tasks, err := s.store.ListCourseTasks(ctx, course.ID)
	if err != nil {
		return view, err
	}
	records, err := s.store.ListCourseworkByCourse(ctx, student.ID, course.ID)
	if err != nil {
		return view, err
	}
	completed := make(map[string]storage.Coursework, len(records))
	var lastCompleted time.Time
	for _, record := range records {
		completed[record.CourseTaskID] = record
		if record.CompletedDate.After(lastCompleted) {
			lastCompleted = record.CompletedDate
		}
	}
	gradedWork, err := s.store.ListGradedWorkByCourse(ctx, course.ID)
	if err != nil {
		return view, err
	}
	graded := make(map[string]bool, len(gradedWork))
	for _, work := range gradedWork {
		graded[work.CourseTaskID] = true
	}

	var visible []storage.CourseTask
	pending := 0
	for _, task := range tasks {
		if !task.VisibleTo(enrollment.GradeLevelID) {
			continue
		}
		visible = append(visible, task)
		if _, done := completed[task.ID]; !done {
			pending++
		}
	}

	start := schedule.ForecastStart(cal, today, lastCompleted)
	planned := schedule.PlannedDates(cal, course.Days, start, pending)

	plannedIdx := 0
	for _, task := range visible {
		record, done := completed[task.ID]
		if done && !showCompleted {
			continue
		}
		item := templates.StudentCourseItem{
			Description: task.Description,
			Minutes:     task.DurationMinutes,
			Completed:   done,
			URL:         routepath.StudentTask(student.ID, task.ID),
		}
		if done {
			item.Date = record.CompletedDate.Format(dateLayout)
			if graded[task.ID] {
				item.GradeURL = routepath.StudentTaskGrade(student.ID, task.ID) +
					"?" + routepath.GradeTaskNextParam + "=" + url.QueryEscape(selfURL)
			}
		} else {
			if plannedIdx < len(planned) {
				item.Date = planned[plannedIdx].Format(dateLayout)
			}
			plannedIdx++
		}
		view.Items = append(view.Items, item)
	}
	return view, nil
}

// gradeLanding groups each student's completed but ungraded work.
func (s service) gradeLanding(ctx context.Context, schoolID string) (templates.GradeView, error) {
	view := templates.GradeView{}

	students, err := s.store.ListStudents(ctx, schoolID)
	if err != nil {
		return view, err
	}
	for _, student := range students {
		pending, err := s.store.ListPendingGradedWork(ctx, student.ID)
		if err != nil {
			return view, err
		}
		if len(pending) == 0 {
			continue
		}
		row := templates.GradeStudent{ID: student.ID, Name: student.FullName()}
		for _, work := range pending {
			row.Work = append(row.Work, templates.GradeWork{
				ID:          work.GradedWorkID,
				Description: work.TaskDescription,
				CourseName:  work.CourseName,
			})
		}
		view.Students = append(view.Students, row)
	}
	return view, nil
}

// saveGrades scores the batch form. Field names follow the rendered page,
// graded_work-{studentID}-{gradedWorkID}, so the pending pairs drive the
// lookup. Blank and malformed scores are skipped.
func (s service) saveGrades(ctx context.Context, schoolID string, form url.Values) error {
	students, err := s.store.ListStudents(ctx, schoolID)
	if err != nil {
		return err
	}
	for _, student := range students {
		pending, err := s.store.ListPendingGradedWork(ctx, student.ID)
		if err != nil {
			return err
		}
		for _, work := range pending {
			raw := strings.TrimSpace(form.Get("graded_work-" + student.ID + "-" + work.GradedWorkID))
			if raw == "" {
				continue
			}
			score, err := strconv.Atoi(raw)
			if err != nil || score < 0 || score > 100 {
				continue
			}
			recordID, err := id.NewID()
			if err != nil {
				return err
			}
			record := storage.Grade{
				ID:           recordID,
				StudentID:    student.ID,
				GradedWorkID: work.GradedWorkID,
				Score:        score,
			}
			if err := s.store.PutGrade(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

type enrollFormData struct {
	Students    []templates.Option
	GradeLevels []templates.Option
	hasStudents bool
}

// enrollForm gathers the year's grade levels and the students still free to
// enroll in it.
func (s service) enrollForm(ctx context.Context, schoolID string, year storage.SchoolYear) (enrollFormData, error) {
	form := enrollFormData{}

	levels, err := s.store.ListGradeLevels(ctx, year.ID)
	if err != nil {
		return form, err
	}
	form.GradeLevels = gradeLevelOptions(levels)

	students, err := s.store.ListStudents(ctx, schoolID)
	if err != nil {
		return form, err
	}
	form.hasStudents = len(students) > 0

	enrollments, err := s.store.ListEnrollmentsByYear(ctx, year.ID)
	if err != nil {
		return form, err
	}
	enrolled := make(map[string]bool, len(enrollments))
	for _, enrollment := range enrollments {
		enrolled[enrollment.StudentID] = true
	}
	for _, student := range students {
		if enrolled[student.ID] {
			continue
		}
		form.Students = append(form.Students, templates.Option{ID: student.ID, Label: student.FullName()})
	}
	return form, nil
}

func gradeLevelOptions(levels []storage.GradeLevel) []templates.Option {
	options := make([]templates.Option, 0, len(levels))
	for _, level := range levels {
		options = append(options, templates.Option{ID: level.ID, Label: level.Name})
	}
	return options
}
