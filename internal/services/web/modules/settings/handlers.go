package settings

import (
	"net/http"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/flash"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/pagerender"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/weberror"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	viewer := module.Viewer{}
	if h.deps.ResolveViewer != nil {
		viewer = h.deps.ResolveViewer(r)
	}
	view := templates.SettingsView{
		Email:     viewer.Email,
		Languages: templates.LanguageOptions(h.activeLanguage(r)),
	}
	pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Name:     "settings.html",
		TitleKey: "title.settings",
		Data:     view,
	})
}

// handleLanguageSubmit persists the chosen language on a cookie so every
// later request renders in it.
func (h handlers) handleLanguageSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse language form"))
		return
	}
	tag, ok := i18n.ParseTag(r.PostFormValue(routepath.SettingsLanguageParam))
	if !ok {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "unsupported language tag"))
		return
	}

	i18n.SetLanguageCookie(w, tag)
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("flash.settings.language_saved"), h.deps.CookiePolicy)
	http.Redirect(w, r, routepath.SettingsPrefix, http.StatusFound)
}

func (h handlers) activeLanguage(r *http.Request) string {
	if h.deps.ResolveLanguage != nil {
		if lang := h.deps.ResolveLanguage(r); lang != "" {
			return lang
		}
	}
	tag, _ := i18n.ResolveTag(r)
	return tag.String()
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.SettingsPrefix, http.StatusMovedPermanently)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
