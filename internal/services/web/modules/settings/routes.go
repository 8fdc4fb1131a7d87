package settings

import (
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsLanguage, h.handleLanguageSubmit)

	mux.HandleFunc(strings.TrimSuffix(routepath.SettingsPrefix, "/"), h.redirectIndex)
	mux.HandleFunc(routepath.SettingsPrefix, h.handleNotFound)
}
