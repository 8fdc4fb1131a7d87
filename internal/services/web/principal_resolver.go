package web

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/authctx"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/sessioncookie"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

type requestPrincipalState struct {
	userIDOnce   sync.Once
	userID       string
	viewerOnce   sync.Once
	viewer       module.Viewer
	languageOnce sync.Once
	language     string
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	store    storage.Store
	sessions *auth.Sessions
}

func newPrincipalResolver(cfg Config) principalResolver {
	return principalResolver{
		store:    cfg.Store,
		sessions: cfg.Sessions,
	}
}

func (r principalResolver) resolveSessionUserID(ctx context.Context, token string) (string, bool) {
	if r.sessions == nil || r.store == nil {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	userID, err := r.sessions.Verify(token)
	if err != nil {
		return "", false
	}
	if _, err := r.store.GetUser(ctx, userID); err != nil {
		return "", false
	}
	return userID, true
}

func (r principalResolver) resolveRequestUserIDUncached(req *http.Request) string {
	if req == nil {
		return ""
	}
	token, ok := sessioncookie.Read(req)
	if !ok {
		return ""
	}
	userID, ok := r.resolveSessionUserID(req.Context(), token)
	if !ok {
		return ""
	}
	return userID
}

func (r principalResolver) resolveRequestUserID(request *http.Request) string {
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.userIDOnce.Do(func() {
			state.userID = r.resolveRequestUserIDUncached(request)
		})
		return state.userID
	}
	return r.resolveRequestUserIDUncached(request)
}

func (r principalResolver) resolveViewerUncached(request *http.Request) module.Viewer {
	userID := r.resolveRequestUserID(request)
	if userID == "" || r.store == nil {
		return module.Viewer{}
	}
	user, err := r.store.GetUser(request.Context(), userID)
	if err != nil {
		return module.Viewer{}
	}
	viewer := module.Viewer{
		UserID:      user.ID,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
	}
	school, err := r.store.GetSchoolByUser(request.Context(), userID)
	if err == nil {
		viewer.SchoolID = school.ID
	}
	return viewer
}

func (r principalResolver) resolveViewer(request *http.Request) module.Viewer {
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = r.resolveViewerUncached(request)
		})
		return state.viewer
	}
	return r.resolveViewerUncached(request)
}

func (r principalResolver) resolveRequestLanguageUncached(request *http.Request) string {
	tag, _ := i18n.ResolveTag(request)
	return tag.String()
}

func (r principalResolver) resolveRequestLanguage(request *http.Request) string {
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.languageOnce.Do(func() {
			state.language = r.resolveRequestLanguageUncached(request)
		})
		return state.language
	}
	return r.resolveRequestLanguageUncached(request)
}

func (r principalResolver) authRequired() func(*http.Request) bool {
	validated := authctx.ValidatedSessionAuth(func(ctx context.Context, token string) bool {
		userID, ok := r.resolveSessionUserID(ctx, token)
		if !ok {
			return false
		}
		if state := requestPrincipalStateFromContext(ctx); state != nil {
			state.userIDOnce.Do(func() {
				state.userID = userID
			})
		}
		return true
	})
	return func(request *http.Request) bool {
		return validated(request)
	}
}
