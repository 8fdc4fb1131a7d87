package public

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/sessioncookie"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

func testDeps(t *testing.T) (module.Dependencies, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	deps := module.Dependencies{
		Store:    store,
		Auth:     &auth.Service{Store: store},
		Sessions: &auth.Sessions{Secret: []byte("test-session-secret")},
	}
	return deps, store
}

func mountHandler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, "/")
	}
	return mount.Handler
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("expected a session cookie on the response")
	return nil
}

func TestLandingRendersForAnonymous(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Homeschool planning that stays out of the way.") {
		t.Fatal("body is missing the landing tagline")
	}
}

func TestLandingRedirectsSignedInToDaily(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	deps.ResolveViewer = func(*http.Request) module.Viewer {
		return module.Viewer{UserID: "user-1"}
	}
	h := mountHandler(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/daily/" {
		t.Fatalf("Location = %q, want %q", got, "/daily/")
	}
}

func TestHealthEndpointReportsOK(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %q, want ok status", rr.Body.String())
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatal("body is missing the not-found message")
	}
}

func TestSignupCreatesAccountAndSignsIn(t *testing.T) {
	t.Parallel()

	deps, store := testDeps(t)
	h := mountHandler(t, deps)

	rr := postForm(h, "/signup", url.Values{
		"email":            {"parent@example.com"},
		"password":         {"correct horse battery"},
		"password_confirm": {"correct horse battery"},
	})

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusFound, rr.Body.String())
	}
	if got := rr.Header().Get("Location"); got != "/daily/" {
		t.Fatalf("Location = %q, want %q", got, "/daily/")
	}
	sessionCookie(t, rr)

	user, err := store.GetUserByEmail(context.Background(), "parent@example.com")
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	if _, err := store.GetSchoolByUser(context.Background(), user.ID); err != nil {
		t.Fatalf("signup should create the school: %v", err)
	}
}

func TestSignupRejectsMismatchedPasswords(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	rr := postForm(h, "/signup", url.Values{
		"email":            {"parent@example.com"},
		"password":         {"correct horse battery"},
		"password_confirm": {"different entirely"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "The passwords do not match.") {
		t.Fatal("body is missing the mismatch error")
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	rr := postForm(h, "/signup", url.Values{
		"email":            {"parent@example.com"},
		"password":         {"short"},
		"password_confirm": {"short"},
	})

	if !strings.Contains(rr.Body.String(), "Password must be at least 8 characters.") {
		t.Fatal("body is missing the password length error")
	}
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	if _, err := deps.Auth.SignUp(context.Background(), "parent@example.com", "correct horse battery"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	h := mountHandler(t, deps)

	rr := postForm(h, "/signup", url.Values{
		"email":            {"parent@example.com"},
		"password":         {"correct horse battery"},
		"password_confirm": {"correct horse battery"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "An account with that email already exists.") {
		t.Fatal("body is missing the taken-email error")
	}
}

func TestLoginSignsInWithValidCredentials(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	if _, err := deps.Auth.SignUp(context.Background(), "parent@example.com", "correct horse battery"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	h := mountHandler(t, deps)

	rr := postForm(h, "/login", url.Values{
		"email":    {"Parent@Example.com"},
		"password": {"correct horse battery"},
	})

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusFound, rr.Body.String())
	}
	if got := rr.Header().Get("Location"); got != "/daily/" {
		t.Fatalf("Location = %q, want %q", got, "/daily/")
	}

	cookie := sessionCookie(t, rr)
	userID, err := deps.Sessions.Verify(cookie.Value)
	if err != nil {
		t.Fatalf("verify issued session: %v", err)
	}
	if userID == "" {
		t.Fatal("issued session names no user")
	}
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	if _, err := deps.Auth.SignUp(context.Background(), "parent@example.com", "correct horse battery"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	h := mountHandler(t, deps)

	rr := postForm(h, "/login", url.Values{
		"email":    {"parent@example.com"},
		"password": {"wrong password"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Enter a correct email address and password.") {
		t.Fatal("body is missing the invalid-credentials error")
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	req := httptest.NewRequest(http.MethodPost, "https://theschooldesk.app/logout", nil)
	req.Header.Set("Origin", "https://theschooldesk.app")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/" {
		t.Fatalf("Location = %q, want %q", got, "/")
	}
	cleared := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("session cookie was not cleared")
	}
}

func TestLogoutWithSessionDemandsSameOriginProof(t *testing.T) {
	t.Parallel()

	deps, _ := testDeps(t)
	h := mountHandler(t, deps)

	req := httptest.NewRequest(http.MethodPost, "https://theschooldesk.app/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}
