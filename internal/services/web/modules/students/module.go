// Package students serves the roster and everything recorded against a
// student: enrollments, coursework, and grades.
package students

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

// Module provides the student routes.
type Module struct{}

// New returns a students module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "students" }

// Mount wires student route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.StudentsPrefix, Handler: mux}, nil
}
