package teachers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/pagerender"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/weberror"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

type handlers struct {
	deps module.Dependencies
	svc  service
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, svc: service{store: deps.Store}}
}

func (h handlers) handleThisWeek(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Checklist(h.deps.Today()), http.StatusFound)
}

func (h handlers) handleWeek(w http.ResponseWriter, r *http.Request) {
	schoolID, err := h.school(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	day, err := checklistDate(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.weekChecklist(r.Context(), schoolID, day, h.deps.Today())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "checklist.html", "title.checklist", view)
}

func (h handlers) handleEditForm(w http.ResponseWriter, r *http.Request) {
	schoolID, day, year, err := h.editTarget(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.editForm(r.Context(), schoolID, year, day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render(w, r, "checklist_edit.html", "title.checklist_edit", view)
}

func (h handlers) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	schoolID, day, year, err := h.editTarget(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse checklist form"))
		return
	}
	if err := h.svc.saveExclusions(r.Context(), schoolID, year, r.PostForm); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.Checklist(day), http.StatusFound)
}

// editTarget resolves the checklist edit date and the school year covering
// it. A date no year covers reads as not found.
func (h handlers) editTarget(r *http.Request) (string, time.Time, storage.SchoolYear, error) {
	schoolID, err := h.school(r)
	if err != nil {
		return "", time.Time{}, storage.SchoolYear{}, err
	}
	day, err := checklistDate(r)
	if err != nil {
		return "", time.Time{}, storage.SchoolYear{}, err
	}
	year, found, err := h.svc.yearFor(r.Context(), schoolID, day)
	if err != nil {
		return "", time.Time{}, storage.SchoolYear{}, err
	}
	if !found {
		return "", time.Time{}, storage.SchoolYear{}, weberror.E(weberror.KindNotFound, "no school year covers the checklist date")
	}
	return schoolID, day, year, nil
}

// checklistDate reads the {year}/{month}/{day} path segments. Anything that
// is not a real calendar date reads as not found.
func checklistDate(r *http.Request) (time.Time, error) {
	year, errYear := strconv.Atoi(r.PathValue("year"))
	month, errMonth := strconv.Atoi(r.PathValue("month"))
	day, errDay := strconv.Atoi(r.PathValue("day"))
	if errYear != nil || errMonth != nil || errDay != nil {
		return time.Time{}, weberror.E(weberror.KindNotFound, "checklist date is not numeric")
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, weberror.E(weberror.KindNotFound, "checklist date does not exist")
	}
	return date, nil
}

func (h handlers) redirectChecklist(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.ChecklistIndex, http.StatusFound)
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.TeachersPrefix, http.StatusMovedPermanently)
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
