package app

import (
	"net/http"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
)

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config, authRequired func(*http.Request) bool) (http.Handler, error) {
	composer := Composer{}
	deps := cfg.Dependencies
	if deps.ResolveLanguage == nil {
		deps.ResolveLanguage = func(r *http.Request) string {
			tag, _ := i18n.ResolveTag(r)
			return tag.String()
		}
	}
	if deps.ResolveViewer == nil {
		deps.ResolveViewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}
	return composer.Compose(ComposeInput{
		Dependencies:     deps,
		AuthRequired:     authRequired,
		PublicModules:    cfg.PublicModules,
		ProtectedModules: cfg.ProtectedModules,
	})
}
