package students

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/platform/id"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/flash"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/pagerender"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/weberror"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

const dateLayout = "2006-01-02"

type handlers struct {
	deps module.Dependencies
	svc  service
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, svc: service{store: deps.Store}}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.roster(r.Context(), schoolID, h.deps.Today())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "students.html", "title.students", view)
}

func (h handlers) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "student_form.html", "title.student_create", templates.StudentFormView{})
}

func (h handlers) handleCreateSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse student form"))
		return
	}

	view := templates.StudentFormView{
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
	}
	if view.FirstName == "" {
		view.Errors = append(view.Errors, "student_create.error.first_name_required")
	}
	if view.LastName == "" {
		view.Errors = append(view.Errors, "student_create.error.last_name_required")
	}
	if len(view.Errors) > 0 {
		h.render(w, r, "student_form.html", "title.student_create", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	student := storage.Student{
		ID:        recordID,
		SchoolID:  schoolID,
		FirstName: view.FirstName,
		LastName:  view.LastName,
	}
	if err := h.deps.Store.PutStudent(r.Context(), student); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.StudentsPrefix, http.StatusFound)
}

func (h handlers) handleCourse(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	student, err := h.deps.Store.GetStudent(ctx, r.PathValue("studentID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	course, err := h.deps.Store.GetCourse(ctx, r.PathValue("courseID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	showCompleted := r.URL.Query().Get(routepath.StudentCourseCompletedParam) == "1"
	view, err := h.svc.coursePage(ctx, schoolID, student, course, h.deps.Today(), showCompleted)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "student_course.html", "title.student_course", view)
}

func (h handlers) handleCourseworkForm(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	student, task, err := h.studentAndTask(r, schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view := templates.CourseworkFormView{
		StudentName:     student.FullName(),
		TaskDescription: task.Description,
		CompletedDate:   h.deps.Today().Format(dateLayout),
	}
	record, err := h.deps.Store.GetCoursework(r.Context(), student.ID, task.ID)
	switch {
	case err == nil:
		view.Completed = true
		view.CompletedDate = record.CompletedDate.Format(dateLayout)
	case errors.Is(err, storage.ErrNotFound):
	default:
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "coursework_form.html", "title.coursework", view)
}

func (h handlers) handleCourseworkSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	student, task, err := h.studentAndTask(r, schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse coursework form"))
		return
	}

	ctx := r.Context()
	courseURL := routepath.StudentCourse(student.ID, task.CourseID)

	if r.PostFormValue("completed") != "on" {
		err := h.deps.Store.DeleteCoursework(ctx, student.ID, task.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			h.writeError(w, r, err)
			return
		}
		http.Redirect(w, r, courseURL, http.StatusFound)
		return
	}

	view := templates.CourseworkFormView{
		StudentName:     student.FullName(),
		TaskDescription: task.Description,
		Completed:       true,
		CompletedDate:   strings.TrimSpace(r.PostFormValue("completed_date")),
	}
	completedDate, err := time.Parse(dateLayout, view.CompletedDate)
	if err != nil {
		view.Errors = append(view.Errors, "form.error.date_format")
		h.render(w, r, "coursework_form.html", "title.coursework", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.Coursework{
		ID:            recordID,
		StudentID:     student.ID,
		CourseTaskID:  task.ID,
		CompletedDate: completedDate,
	}
	if err := h.deps.Store.PutCoursework(ctx, record); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, courseURL, http.StatusFound)
}

func (h handlers) handleGradeTaskForm(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	student, task, err := h.studentAndTask(r, schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	work, err := h.deps.Store.GetGradedWorkByTask(ctx, task.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view := templates.GradeTaskView{
		StudentName:     student.FullName(),
		TaskDescription: task.Description,
	}
	grade, err := h.deps.Store.GetGrade(ctx, student.ID, work.ID)
	switch {
	case err == nil:
		view.Score = strconv.Itoa(grade.Score)
	case errors.Is(err, storage.ErrNotFound):
	default:
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "grade_task.html", "title.grade", view)
}

func (h handlers) handleGradeTaskSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	student, task, err := h.studentAndTask(r, schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	work, err := h.deps.Store.GetGradedWorkByTask(ctx, task.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse grade form"))
		return
	}

	view := templates.GradeTaskView{
		StudentName:     student.FullName(),
		TaskDescription: task.Description,
		Score:           strings.TrimSpace(r.PostFormValue("score")),
	}
	score, err := strconv.Atoi(view.Score)
	if err != nil || score < 0 || score > 100 {
		view.Errors = append(view.Errors, "grade_task.error.score_range")
		h.render(w, r, "grade_task.html", "title.grade", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.Grade{
		ID:           recordID,
		StudentID:    student.ID,
		GradedWorkID: work.ID,
		Score:        score,
	}
	if err := h.deps.Store.PutGrade(ctx, record); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, h.gradeReturnPath(r), http.StatusFound)
}

func (h handlers) handleGradeLanding(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.gradeLanding(r.Context(), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "grade.html", "title.grade", view)
}

func (h handlers) handleGradeLandingSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse grades form"))
		return
	}
	if err := h.svc.saveGrades(r.Context(), schoolID, r.PostForm); err != nil {
		h.writeError(w, r, err)
		return
	}
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("flash.grades.saved"), h.deps.CookiePolicy)
	http.Redirect(w, r, routepath.Daily, http.StatusFound)
}

func (h handlers) handleEnrollForm(w http.ResponseWriter, r *http.Request) {
	h.serveEnrollForm(w, r, templates.EnrollView{})
}

func (h handlers) handleEnrollSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	year, err := h.deps.Store.GetSchoolYear(ctx, r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse enrollment form"))
		return
	}

	view := templates.EnrollView{
		SelectedStudent:    strings.TrimSpace(r.PostFormValue("student")),
		SelectedGradeLevel: strings.TrimSpace(r.PostFormValue("grade_level")),
	}
	if view.SelectedStudent == "" {
		view.Errors = append(view.Errors, "enroll.error.student_required")
		h.serveEnrollForm(w, r, view)
		return
	}
	student, err := h.deps.Store.GetStudent(ctx, view.SelectedStudent, schoolID)
	if errors.Is(err, storage.ErrNotFound) {
		view.Errors = append(view.Errors, "enroll.error.foreign_student")
		h.serveEnrollForm(w, r, view)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	errKey, err := h.enroll(r, schoolID, year, student, view.SelectedGradeLevel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if errKey != "" {
		view.Errors = append(view.Errors, errKey)
		h.serveEnrollForm(w, r, view)
		return
	}
	http.Redirect(w, r, routepath.SchoolYear(year.ID), http.StatusFound)
}

func (h handlers) handleStudentEnrollForm(w http.ResponseWriter, r *http.Request) {
	h.serveStudentEnrollForm(w, r, templates.EnrollView{})
}

func (h handlers) handleStudentEnrollSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	student, err := h.deps.Store.GetStudent(ctx, r.PathValue("studentID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(ctx, r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse enrollment form"))
		return
	}

	view := templates.EnrollView{
		StudentName:        student.FullName(),
		SelectedGradeLevel: strings.TrimSpace(r.PostFormValue("grade_level")),
	}
	errKey, err := h.enroll(r, schoolID, year, student, view.SelectedGradeLevel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if errKey != "" {
		view.Errors = append(view.Errors, errKey)
		h.serveStudentEnrollForm(w, r, view)
		return
	}
	http.Redirect(w, r, routepath.SchoolYear(year.ID), http.StatusFound)
}

// enroll validates the grade level choice and writes the enrollment. A
// non-empty key is a form error for re-render; err covers storage failures.
func (h handlers) enroll(r *http.Request, schoolID string, year storage.SchoolYear, student storage.Student, gradeLevelID string) (string, error) {
	ctx := r.Context()
	if gradeLevelID == "" {
		return "enroll.error.grade_level_required", nil
	}
	level, err := h.deps.Store.GetGradeLevel(ctx, gradeLevelID, schoolID)
	if errors.Is(err, storage.ErrNotFound) {
		return "enroll.error.foreign_grade_level", nil
	}
	if err != nil {
		return "", err
	}
	if level.SchoolYearID != year.ID {
		return "enroll.error.foreign_grade_level", nil
	}
	if _, err := h.deps.Store.GetEnrollmentByYear(ctx, student.ID, year.ID); err == nil {
		return "enroll.error.already_enrolled", nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	recordID, err := id.NewID()
	if err != nil {
		return "", err
	}
	record := storage.Enrollment{
		ID:           recordID,
		StudentID:    student.ID,
		GradeLevelID: level.ID,
	}
	if err := h.deps.Store.PutEnrollment(ctx, record); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return "enroll.error.already_enrolled", nil
		}
		return "", err
	}
	return "", nil
}

// serveEnrollForm renders the year-scoped picker, redirecting with a flash
// notice when the school has nothing to enroll yet.
func (h handlers) serveEnrollForm(w http.ResponseWriter, r *http.Request, view templates.EnrollView) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	year, err := h.deps.Store.GetSchoolYear(ctx, r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	form, err := h.svc.enrollForm(ctx, schoolID, year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	switch {
	case len(form.GradeLevels) == 0:
		h.redirectWithNotice(w, r, routepath.GradeLevelCreate(year.ID), "flash.enroll.no_grade_levels")
		return
	case !form.hasStudents:
		h.redirectWithNotice(w, r, routepath.StudentsPrefix, "flash.enroll.no_students")
		return
	case len(form.Students) == 0:
		h.redirectWithNotice(w, r, routepath.SchoolYear(year.ID), "flash.enroll.all_enrolled")
		return
	}

	view.Students = form.Students
	view.GradeLevels = form.GradeLevels
	h.render(w, r, "enroll.html", "title.enroll", view)
}

func (h handlers) serveStudentEnrollForm(w http.ResponseWriter, r *http.Request, view templates.EnrollView) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	student, err := h.deps.Store.GetStudent(ctx, r.PathValue("studentID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(ctx, r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	levels, err := h.deps.Store.ListGradeLevels(ctx, year.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view.StudentName = student.FullName()
	view.GradeLevels = gradeLevelOptions(levels)
	h.render(w, r, "enroll.html", "title.enroll", view)
}

func (h handlers) redirectWithNotice(w http.ResponseWriter, r *http.Request, location, noticeKey string) {
	flash.WriteWithPolicy(w, r, flash.NoticeInfo(noticeKey), h.deps.CookiePolicy)
	http.Redirect(w, r, location, http.StatusFound)
}

// gradeReturnPath honors a local ?next= target and falls back to the roster.
func (h handlers) gradeReturnPath(r *http.Request) string {
	next := r.URL.Query().Get(routepath.GradeTaskNextParam)
	if next != "" && strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		if _, err := url.Parse(next); err == nil {
			return next
		}
	}
	return routepath.StudentsPrefix
}

func (h handlers) studentAndTask(r *http.Request, schoolID string) (storage.Student, storage.CourseTask, error) {
	ctx := r.Context()
	student, err := h.deps.Store.GetStudent(ctx, r.PathValue("studentID"), schoolID)
	if err != nil {
		return storage.Student{}, storage.CourseTask{}, err
	}
	task, err := h.deps.Store.GetCourseTask(ctx, r.PathValue("taskID"), schoolID)
	if err != nil {
		return storage.Student{}, storage.CourseTask{}, err
	}
	return student, task, nil
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.StudentsPrefix, http.StatusMovedPermanently)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, name, titleKey string, data any) {
	pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Name:     name,
		TitleKey: titleKey,
		Data:     data,
	})
}

func (h handlers) school(r *http.Request) (string, error) {
	if h.deps.ResolveViewer == nil {
		return "", fmt.Errorf("viewer resolver is not configured")
	}
	viewer := h.deps.ResolveViewer(r)
	if viewer.SchoolID == "" {
		return "", fmt.Errorf("signed-in viewer has no school")
	}
	return viewer.SchoolID, nil
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
