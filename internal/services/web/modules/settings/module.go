// Package settings serves the account settings page and the language
// preference switch.
package settings

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

// Module provides the settings routes.
type Module struct{}

// New returns a settings module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "settings" }

// Mount wires settings route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.SettingsPrefix, Handler: mux}, nil
}
