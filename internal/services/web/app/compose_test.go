package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/sessioncookie"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	_, err := composer.Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsNilPublicModule(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	_, err := composer.Compose(ComposeInput{
		PublicModules: []module.Module{nil},
	})
	if err == nil {
		t.Fatalf("expected nil public module error")
	}
}

func TestComposeRejectsNilProtectedModule(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	_, err := composer.Compose(ComposeInput{
		ProtectedModules: []module.Module{nil},
	})
	if err == nil {
		t.Fatalf("expected nil protected module error")
	}
}

func TestComposeWrapsProtectedModulesWithAuth(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	h, err := composer.Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return false },
		ProtectedModules: []module.Module{
			stubModule{id: "students", mount: module.Mount{Prefix: "/students/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/students/abc", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q, want %q", got, "/login")
	}
}

func TestComposeAliasesSlashlessProtectedPrefix(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	h, err := composer.Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "daily", mount: module.Mount{Prefix: "/daily/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/daily", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeMountsPublicModulesWithoutAuth(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	h, err := composer.Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return false },
		PublicModules: []module.Module{
			stubModule{id: "public", mount: module.Mount{Prefix: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeRejectsCookieMutationWithoutSameOriginProof(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	h, err := composer.Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "students", mount: module.Mount{Prefix: "/students/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/students/create/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token-1"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestComposeAllowsCookieMutationWithSameOriginHeader(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	h, err := composer.Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "students", mount: module.Mount{Prefix: "/students/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "https://theschooldesk.app/students/create/", nil)
	req.Host = "theschooldesk.app"
	req.Header.Set("Origin", "https://theschooldesk.app")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token-1"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeRejectsCookieMutationWhenOriginSchemeDiffers(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	h, err := composer.Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "students", mount: module.Mount{Prefix: "/students/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "https://theschooldesk.app/students/create/", nil)
	req.Host = "theschooldesk.app"
	req.Header.Set("Origin", "http://theschooldesk.app")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token-1"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestComposeRejectsProtectedModuleOutsideProtectedPrefixes(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	_, err := composer.Compose(ComposeInput{
		ProtectedModules: []module.Module{
			stubModule{id: "bad", mount: module.Mount{Prefix: "/open/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
		},
	})
	if err == nil {
		t.Fatalf("expected protected module prefix policy error")
	}
}

func TestComposeRejectsPublicModuleOnProtectedPrefix(t *testing.T) {
	t.Parallel()

	composer := Composer{}
	_, err := composer.Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "bad", mount: module.Mount{Prefix: "/daily/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
		},
	})
	if err == nil {
		t.Fatalf("expected public module prefix policy error")
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return s.mount, s.err
}
