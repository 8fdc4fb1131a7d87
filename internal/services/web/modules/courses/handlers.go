package courses

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/platform/id"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/pagerender"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/weberror"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
	svc  service
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, svc: service{store: deps.Store}}
}

// handleCreateForm renders the add-course form for the school year named by
// the query string. A new course defaults to the year's school days.
func (h handlers) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.formYear(r, schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	levels, _, err := h.svc.levelOptions(r.Context(), year.ID, nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := templates.CourseFormView{
		YearName:    templates.SchoolYearLabel(year.StartDate, year.EndDate),
		Days:        templates.DayOptions(year.Days),
		GradeLevels: levels,
	}
	h.render(w, r, "course_form.html", "title.course_create", view)
}

func (h handlers) handleCreateSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.formYear(r, schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse course form"))
		return
	}

	days := parseDays(r.PostForm["days"])
	levels, selected, err := h.svc.levelOptions(r.Context(), year.ID, r.PostForm["grade_levels"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := templates.CourseFormView{
		YearName:    templates.SchoolYearLabel(year.StartDate, year.EndDate),
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Days:        templates.DayOptions(days),
		GradeLevels: levels,
	}
	if view.Name == "" {
		view.Errors = append(view.Errors, "form.error.name_required")
	}
	if len(selected) == 0 {
		view.Errors = append(view.Errors, "course.error.grade_level_required")
	}
	if len(view.Errors) > 0 {
		h.render(w, r, "course_form.html", "title.course_create", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.Course{
		ID:            recordID,
		Name:          view.Name,
		Days:          days,
		IsActive:      true,
		SchoolYearID:  year.ID,
		GradeLevelIDs: selected,
	}
	if err := h.deps.Store.PutCourse(r.Context(), record); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.Course(record.ID), http.StatusFound)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	course, err := h.deps.Store.GetCourse(r.Context(), r.PathValue("courseID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.detail(r.Context(), schoolID, course)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "course.html", "title.course", view)
}

func (h handlers) handleTaskForm(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	course, err := h.deps.Store.GetCourse(r.Context(), r.PathValue("courseID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	options, err := h.svc.taskLevelOptions(r.Context(), course)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := templates.CourseTaskFormView{CourseName: course.Name, GradeLevels: options}
	h.render(w, r, "course_task_form.html", "title.course_task_create", view)
}

func (h handlers) handleTaskSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	course, err := h.deps.Store.GetCourse(r.Context(), r.PathValue("courseID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse course task form"))
		return
	}

	view := templates.CourseTaskFormView{
		CourseName:         course.Name,
		Description:        strings.TrimSpace(r.PostFormValue("description")),
		Minutes:            strings.TrimSpace(r.PostFormValue("duration")),
		Graded:             r.PostFormValue("graded") == "on",
		SelectedGradeLevel: strings.TrimSpace(r.PostFormValue("grade_level")),
	}
	view.GradeLevels, err = h.svc.taskLevelOptions(r.Context(), course)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if view.SelectedGradeLevel != "" && !taughtTo(course, view.SelectedGradeLevel) {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "task grade level is not taught by the course"))
		return
	}

	if view.Description == "" {
		view.Errors = append(view.Errors, "form.error.description_required")
	}
	minutes, convErr := strconv.Atoi(view.Minutes)
	if convErr != nil || minutes <= 0 {
		view.Errors = append(view.Errors, "course_task.error.duration_positive")
	}
	if len(view.Errors) > 0 {
		h.render(w, r, "course_task_form.html", "title.course_task_create", view)
		return
	}

	// Positions are dense per course; a new task goes to the end.
	existing, err := h.deps.Store.ListCourseTasks(r.Context(), course.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	taskID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.CourseTask{
		ID:              taskID,
		CourseID:        course.ID,
		Description:     view.Description,
		DurationMinutes: minutes,
		Position:        len(existing) + 1,
		GradeLevelID:    view.SelectedGradeLevel,
	}
	if err := h.deps.Store.PutCourseTask(r.Context(), record); err != nil {
		h.writeError(w, r, err)
		return
	}
	if view.Graded {
		if err := h.createGradedWork(r, record.ID); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	http.Redirect(w, r, routepath.Course(course.ID), http.StatusFound)
}

// handleToggleGraded flips whether a task produces a score. Adding the flag
// creates graded work, removing it deletes the graded work again.
func (h handlers) handleToggleGraded(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	course, err := h.deps.Store.GetCourse(r.Context(), r.PathValue("courseID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	task, err := h.deps.Store.GetCourseTask(r.Context(), r.PathValue("taskID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if task.CourseID != course.ID {
		h.writeError(w, r, fmt.Errorf("task %s is not part of course %s: %w", task.ID, course.ID, storage.ErrNotFound))
		return
	}

	_, err = h.deps.Store.GetGradedWorkByTask(r.Context(), task.ID)
	switch {
	case err == nil:
		err = h.deps.Store.DeleteGradedWorkByTask(r.Context(), task.ID)
	case errors.Is(err, storage.ErrNotFound):
		err = h.createGradedWork(r, task.ID)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.Course(course.ID), http.StatusFound)
}

func (h handlers) createGradedWork(r *http.Request, taskID string) error {
	workID, err := id.NewID()
	if err != nil {
		return err
	}
	return h.deps.Store.PutGradedWork(r.Context(), storage.GradedWork{ID: workID, CourseTaskID: taskID})
}

// formYear resolves the school year the course form targets from the query
// string. A missing or foreign year reads as not found.
func (h handlers) formYear(r *http.Request, schoolID string) (storage.SchoolYear, error) {
	yearID := r.URL.Query().Get(routepath.CourseSchoolYearParam)
	return h.deps.Store.GetSchoolYear(r.Context(), yearID, schoolID)
}

func taughtTo(course storage.Course, gradeLevelID string) bool {
	for _, levelID := range course.GradeLevelIDs {
		if levelID == gradeLevelID {
			return true
		}
	}
	return false
}

// parseDays folds checked weekday values back into a mask.
func parseDays(values []string) schedule.Days {
	var days schedule.Days
	for _, value := range values {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			continue
		}
		days |= schedule.Days(n) & schedule.AllDays
	}
	return days
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.CoursesPrefix, http.StatusMovedPermanently)
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
