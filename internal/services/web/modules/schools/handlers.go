package schools

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/platform/id"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
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

func (h handlers) handleYearsIndex(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.yearsIndex(r.Context(), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "school_years.html", "title.school_years", view)
}

func (h handlers) handleYearCreateForm(w http.ResponseWriter, r *http.Request) {
	view := templates.SchoolYearFormView{Days: templates.DayOptions(schedule.WeekDays)}
	h.render(w, r, "school_year_form.html", "title.school_year_create", view)
}

func (h handlers) handleYearCreateSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse school year form"))
		return
	}

	days := parseDays(r.PostForm["days"])
	view := templates.SchoolYearFormView{
		Start: strings.TrimSpace(r.PostFormValue("start_date")),
		End:   strings.TrimSpace(r.PostFormValue("end_date")),
		Days:  templates.DayOptions(days),
	}
	start, end, errKeys := parseDateRange(view.Start, view.End)
	view.Errors = errKeys
	if days == schedule.NoDays {
		view.Errors = append(view.Errors, "school_year.error.days_required")
	}
	if len(view.Errors) > 0 {
		h.render(w, r, "school_year_form.html", "title.school_year_create", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.SchoolYear{
		ID:        recordID,
		SchoolID:  schoolID,
		StartDate: start,
		EndDate:   end,
		Days:      days,
	}
	if err := h.deps.Store.PutSchoolYear(r.Context(), record); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.SchoolYear(record.ID), http.StatusFound)
}

func (h handlers) handleYearDetail(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(r.Context(), r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.yearDetail(r.Context(), year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "school_year.html", "title.school_year", view)
}

func (h handlers) handleGradeLevelForm(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(r.Context(), r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := templates.GradeLevelFormView{YearName: templates.SchoolYearLabel(year.StartDate, year.EndDate)}
	h.render(w, r, "grade_level_form.html", "title.grade_level_create", view)
}

func (h handlers) handleGradeLevelSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(r.Context(), r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse grade level form"))
		return
	}

	view := templates.GradeLevelFormView{
		YearName: templates.SchoolYearLabel(year.StartDate, year.EndDate),
		Name:     strings.TrimSpace(r.PostFormValue("name")),
	}
	if view.Name == "" {
		view.Errors = append(view.Errors, "form.error.name_required")
		h.render(w, r, "grade_level_form.html", "title.grade_level_create", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.GradeLevel{
		ID:           recordID,
		SchoolYearID: year.ID,
		Name:         view.Name,
	}
	if err := h.deps.Store.PutGradeLevel(r.Context(), record); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.SchoolYear(year.ID), http.StatusFound)
}

func (h handlers) handleBreakForm(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(r.Context(), r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := templates.BreakFormView{YearName: templates.SchoolYearLabel(year.StartDate, year.EndDate)}
	h.render(w, r, "school_break_form.html", "title.school_break_create", view)
}

func (h handlers) handleBreakSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := h.deps.Store.GetSchoolYear(r.Context(), r.PathValue("yearID"), schoolID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse break form"))
		return
	}

	view := templates.BreakFormView{
		YearName:    templates.SchoolYearLabel(year.StartDate, year.EndDate),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Start:       strings.TrimSpace(r.PostFormValue("start_date")),
		End:         strings.TrimSpace(r.PostFormValue("end_date")),
	}
	if view.Description == "" {
		view.Errors = append(view.Errors, "form.error.description_required")
	}
	start, end, errKeys := parseDateRange(view.Start, view.End)
	view.Errors = append(view.Errors, errKeys...)
	if len(view.Errors) == 0 && (!year.Contains(start) || !year.Contains(end)) {
		view.Errors = append(view.Errors, "school_break.error.outside_year")
	}
	if len(view.Errors) > 0 {
		h.render(w, r, "school_break_form.html", "title.school_break_create", view)
		return
	}

	recordID, err := id.NewID()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record := storage.SchoolBreak{
		ID:           recordID,
		SchoolYearID: year.ID,
		Description:  view.Description,
		StartDate:    start,
		EndDate:      end,
	}
	if err := h.deps.Store.PutSchoolBreak(r.Context(), record); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.SchoolYear(year.ID), http.StatusFound)
}

func (h handlers) redirectYears(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.SchoolYears, http.StatusFound)
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.SchoolsPrefix, http.StatusMovedPermanently)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
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

// parseDateRange validates a start and end date pair, returning form error
// keys for anything missing, malformed, or out of order.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, []string) {
	var errKeys []string
	if startStr == "" {
		errKeys = append(errKeys, "form.error.start_required")
	}
	if endStr == "" {
		errKeys = append(errKeys, "form.error.end_required")
	}
	if len(errKeys) > 0 {
		return time.Time{}, time.Time{}, errKeys
	}

	start, errStart := time.Parse(dateLayout, startStr)
	end, errEnd := time.Parse(dateLayout, endStr)
	if errStart != nil || errEnd != nil {
		return time.Time{}, time.Time{}, []string{"form.error.date_format"}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, []string{"form.error.date_order"}
	}
	return start, end, nil
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
