package schools

import (
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SchoolsPrefix+"{$}", h.redirectYears)
	mux.HandleFunc(http.MethodGet+" "+routepath.SchoolYears+"{$}", h.handleYearsIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SchoolYearCreate+"{$}", h.handleYearCreateForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SchoolYearCreate+"{$}", h.handleYearCreateSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.SchoolYearPattern, h.handleYearDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.GradeLevelCreatePattern, h.handleGradeLevelForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.GradeLevelCreatePattern, h.handleGradeLevelSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.SchoolBreakCreatePattern, h.handleBreakForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SchoolBreakCreatePattern, h.handleBreakSubmit)

	mux.HandleFunc(strings.TrimSuffix(routepath.SchoolsPrefix, "/"), h.redirectIndex)
	mux.HandleFunc(routepath.SchoolsPrefix, h.handleNotFound)
}
