package students

import (
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.StudentsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudentCreate+"{$}", h.handleCreateForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentCreate+"{$}", h.handleCreateSubmit)

	mux.HandleFunc(http.MethodGet+" "+routepath.StudentsGrade+"{$}", h.handleGradeLanding)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentsGrade+"{$}", h.handleGradeLandingSubmit)

	mux.HandleFunc(http.MethodGet+" "+routepath.EnrollmentCreatePattern, h.handleEnrollForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.EnrollmentCreatePattern, h.handleEnrollSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudentEnrollCreatePattern, h.handleStudentEnrollForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentEnrollCreatePattern, h.handleStudentEnrollSubmit)

	mux.HandleFunc(http.MethodGet+" "+routepath.StudentCoursePattern, h.handleCourse)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudentTaskPattern, h.handleCourseworkForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentTaskPattern, h.handleCourseworkSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.StudentTaskGradePattern, h.handleGradeTaskForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.StudentTaskGradePattern, h.handleGradeTaskSubmit)

	mux.HandleFunc(strings.TrimSuffix(routepath.StudentsPrefix, "/"), h.redirectIndex)
	mux.HandleFunc(routepath.StudentsPrefix, h.handleNotFound)
}
