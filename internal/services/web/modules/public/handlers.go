package public

import (
	"errors"
	"net/http"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/httpx"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/pagerender"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/requestmeta"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/sessioncookie"
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

func (h handlers) signedIn(r *http.Request) bool {
	if h.deps.ResolveViewer == nil {
		return false
	}
	return h.deps.ResolveViewer(r).SignedIn()
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		http.Redirect(w, r, routepath.Daily, http.StatusFound)
		return
	}
	pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Name:     "landing.html",
		TitleKey: "title.landing",
	})
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		http.Redirect(w, r, routepath.Daily, http.StatusFound)
		return
	}
	h.renderLogin(w, r, templates.LoginView{})
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if h.deps.Auth == nil || h.deps.Sessions == nil {
		h.writeError(w, r, weberror.E(weberror.KindUnavailable, "sign-in is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse login form"))
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	user, err := h.deps.Auth.Authenticate(r.Context(), email, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.renderLogin(w, r, templates.LoginView{
			Email:  email,
			Errors: []string{"login.error.invalid"},
		})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.startSession(w, r, user.ID)
}

func (h handlers) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		http.Redirect(w, r, routepath.Daily, http.StatusFound)
		return
	}
	h.renderSignup(w, r, templates.SignupView{})
}

func (h handlers) handleSignupSubmit(w http.ResponseWriter, r *http.Request) {
	if h.deps.Auth == nil || h.deps.Sessions == nil {
		h.writeError(w, r, weberror.E(weberror.KindUnavailable, "signup is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, weberror.EK(weberror.KindInvalidInput, "error.invalid_input", "parse signup form"))
		return
	}
	email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("password_confirm")

	view := templates.SignupView{Email: email}
	if email == "" || !strings.Contains(email, "@") {
		view.Errors = append(view.Errors, "signup.error.email_required")
	}
	if len(password) < auth.MinPasswordLength {
		view.Errors = append(view.Errors, "signup.error.password_length")
	}
	if password != confirm {
		view.Errors = append(view.Errors, "signup.error.password_mismatch")
	}
	if len(view.Errors) > 0 {
		h.renderSignup(w, r, view)
		return
	}

	user, err := h.deps.Auth.SignUp(r.Context(), email, password)
	if errors.Is(err, auth.ErrEmailTaken) {
		view.Errors = append(view.Errors, "signup.error.email_taken")
		h.renderSignup(w, r, view)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.startSession(w, r, user.ID)
}

// handleLogout clears the session. The mutation rides the session cookie, so
// it demands the same origin proof the protected surface does.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessioncookie.Read(r); ok && !requestmeta.HasSameOriginProofWithPolicy(r, h.deps.CookiePolicy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	sessioncookie.ClearWithPolicy(w, r, h.deps.CookiePolicy)
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

type healthPayload struct {
	Status string `json:"status"`
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, healthPayload{Status: "ok"})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

// startSession issues a token for the user and lands them on the daily page.
func (h handlers) startSession(w http.ResponseWriter, r *http.Request, userID string) {
	token, err := h.deps.Sessions.Issue(userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sessioncookie.WriteWithPolicy(w, r, token, h.deps.CookiePolicy)
	http.Redirect(w, r, routepath.Daily, http.StatusFound)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, view templates.LoginView) {
	pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Name:     "login.html",
		TitleKey: "title.login",
		Data:     view,
	})
}

func (h handlers) renderSignup(w http.ResponseWriter, r *http.Request, view templates.SignupView) {
	pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Name:     "signup.html",
		TitleKey: "title.signup",
		Data:     view,
	})
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
