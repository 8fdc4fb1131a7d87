package courses

import (
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.CourseCreate+"{$}", h.handleCreateForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.CourseCreate+"{$}", h.handleCreateSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.CoursePattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.CourseTaskCreatePattern, h.handleTaskForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.CourseTaskCreatePattern, h.handleTaskSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.CourseTaskGradedPattern, h.handleToggleGraded)

	mux.HandleFunc(strings.TrimSuffix(routepath.CoursesPrefix, "/"), h.redirectIndex)
	mux.HandleFunc(routepath.CoursesPrefix, h.handleNotFound)
}
