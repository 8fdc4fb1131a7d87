package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

func newTestHandler(t *testing.T) http.Handler {
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

	handler, err := NewHandler(Config{
		Store:    store,
		Auth:     &auth.Service{Store: store},
		Sessions: &auth.Sessions{Secret: []byte("server-test-secret")},
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	return handler
}

// signUp drives the real signup flow and returns the issued session cookie.
func signUp(t *testing.T, handler http.Handler, email string) *http.Cookie {
	t.Helper()

	form := url.Values{
		"email":            {email},
		"password":         {"correct horse battery"},
		"password_confirm": {"correct horse battery"},
	}
	req := httptest.NewRequest(http.MethodPost, routepath.SignUp, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("signup status = %d, want %d (body %q)", rec.Code, http.StatusFound, rec.Body.String())
	}
	if got, want := rec.Header().Get("Location"), routepath.Daily; got != want {
		t.Fatalf("signup redirect = %q, want %q", got, want)
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "schooldesk_session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("signup response is missing the session cookie")
	return nil
}

func TestHandlerServesHealth(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Health, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("health body = %q, want ok payload", body)
	}
}

func TestHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, routepath.StaticPrefix+"app.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("static status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, ":root") {
		t.Fatalf("static body does not look like the stylesheet")
	}
}

func TestProtectedRoutesRedirectAnonymousToLogin(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	for _, path := range routepath.ProtectedPrefixes() {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("GET %s status = %d, want %d", path, rec.Code, http.StatusFound)
		}
		if got, want := rec.Header().Get("Location"), routepath.Login; got != want {
			t.Fatalf("GET %s redirect = %q, want %q", path, got, want)
		}
	}
}

func TestSignupGrantsProtectedAccess(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	cookie := signUp(t, handler, "parent@example.com")

	req := httptest.NewRequest(http.MethodGet, routepath.Daily, nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("daily status = %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestTamperedSessionCookieStaysAnonymous(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Daily, nil)
	req.AddCookie(&http.Cookie{Name: "schooldesk_session", Value: "not-a-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("daily status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got, want := rec.Header().Get("Location"), routepath.Login; got != want {
		t.Fatalf("daily redirect = %q, want %q", got, want)
	}
}

func TestMutationsRequireSameOriginProof(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	cookie := signUp(t, handler, "parent@example.com")
	form := url.Values{"first_name": {"Ada"}, "last_name": {"Jones"}}

	req := httptest.NewRequest(http.MethodPost, routepath.StudentCreate, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("cross-origin mutation status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodPost, routepath.StudentCreate, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("same-origin mutation status = %d, want %d (body %q)", rec.Code, http.StatusFound, rec.Body.String())
	}
	if got, want := rec.Header().Get("Location"), routepath.StudentsPrefix; got != want {
		t.Fatalf("mutation redirect = %q, want %q", got, want)
	}
}

func TestNewHandlerRequiresStoreAndSessions(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{Sessions: &auth.Sessions{Secret: []byte("x")}}); err == nil {
		t.Fatalf("NewHandler without store should fail")
	}

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if _, err := NewHandler(Config{Store: store}); err == nil {
		t.Fatalf("NewHandler without sessions should fail")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := NewServer(Config{Store: store, Sessions: &auth.Sessions{Secret: []byte("x")}}); err == nil {
		t.Fatalf("NewServer without address should fail")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	server, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		Store:    store,
		Auth:     &auth.Service{Store: store},
		Sessions: &auth.Sessions{Secret: []byte("server-test-secret")},
	})
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	time.AfterFunc(50*time.Millisecond, cancel)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after context cancellation")
	}
}
