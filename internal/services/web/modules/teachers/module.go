// Package teachers serves the printable weekly checklist and its per-course
// exclusion settings.
package teachers

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

// Module provides the teacher checklist routes.
type Module struct{}

// New returns a teachers module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "teachers" }

// Mount wires checklist route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.TeachersPrefix, Handler: mux}, nil
}
