// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/schooldesk/theschooldesk.app/internal/platform/branding"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/flash"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

// ModulePage describes a rendered module page.
type ModulePage struct {
	Name       string
	TitleKey   string
	StatusCode int
	Data       any
}

// WriteModulePage renders the named page with shared layout chrome: the
// localized title, viewer nav state, and any pending flash notice.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) {
	if w == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := i18n.ResolveLocalizer(w, r, deps.ResolveLanguage)

	viewer := module.Viewer{}
	if deps.ResolveViewer != nil {
		viewer = deps.ResolveViewer(r)
	}

	var notice *flash.Notice
	if pending, ok := flash.ReadAndClear(w, r); ok {
		notice = &pending
	}

	templates.WritePage(w, statusCode, page.Name, templates.Page{
		Title:  loc.Sprintf(page.TitleKey, branding.AppName),
		Lang:   lang,
		Path:   requestPath(r),
		Viewer: viewer,
		Notice: notice,
		Data:   page.Data,
	})
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
