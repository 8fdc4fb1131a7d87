package teachers

import (
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.TeachersPrefix+"{$}", h.redirectChecklist)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChecklistIndex+"{$}", h.handleThisWeek)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChecklistPattern, h.handleWeek)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChecklistEditPattern, h.handleEditForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.ChecklistEditPattern, h.handleEditSubmit)

	mux.HandleFunc(strings.TrimSuffix(routepath.TeachersPrefix, "/"), h.redirectIndex)
	mux.HandleFunc(routepath.TeachersPrefix, h.handleNotFound)
}
