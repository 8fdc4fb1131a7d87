// Package courses serves course management: the course itself, its ordered
// task list, and the graded-work flag on each task.
package courses

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

// Module provides the course routes.
type Module struct{}

// New returns a courses module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "courses" }

// Mount wires course route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.CoursesPrefix, Handler: mux}, nil
}
