package daily

import (
	"fmt"
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/pagerender"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/weberror"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

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
	view, err := h.svc.dailyPlan(r.Context(), schoolID, h.deps.Today())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Name:     "daily.html",
		TitleKey: "title.daily",
		Data:     view,
	})
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Daily, http.StatusMovedPermanently)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
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
