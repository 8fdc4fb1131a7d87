// Package schools serves school year management: the year itself, its grade
// levels, and its breaks.
package schools

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

// Module provides the school year routes.
type Module struct{}

// New returns a schools module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "schools" }

// Mount wires school year route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.SchoolsPrefix, Handler: mux}, nil
}
