package daily

import (
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Daily+"{$}", h.handleIndex)
	mux.HandleFunc(strings.TrimSuffix(routepath.Daily, "/"), h.redirectIndex)
	mux.HandleFunc(routepath.Daily, h.handleNotFound)
}
