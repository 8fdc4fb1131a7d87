// Package daily serves the signed-in home page: each student's plan for the
// shown school day.
package daily

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

// Module provides the daily plan routes.
type Module struct{}

// New returns a daily module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "daily" }

// Mount wires daily route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Daily, Handler: mux}, nil
}
