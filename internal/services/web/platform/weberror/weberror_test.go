package weberror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

func TestHTTPStatusMapsKindsAndStoreSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad form"), want: http.StatusBadRequest},
		{name: "unauthorized", err: E(KindUnauthorized, "no session"), want: http.StatusUnauthorized},
		{name: "forbidden", err: E(KindForbidden, "not yours"), want: http.StatusForbidden},
		{name: "unavailable", err: E(KindUnavailable, "store offline"), want: http.StatusServiceUnavailable},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unknown kind", err: E(KindUnknown, "mystery"), want: http.StatusInternalServerError},
		{name: "store not found", err: storage.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped store not found", err: fmt.Errorf("load student: %w", storage.ErrNotFound), want: http.StatusNotFound},
		{name: "store conflict", err: storage.ErrConflict, want: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestLocalizationKeyReadsTypedErrors(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, "error.invalid_input", "raw detail")); got != "error.invalid_input" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "error.invalid_input")
	}
	if got := LocalizationKey(E(KindInvalidInput, "raw detail")); got != "" {
		t.Fatalf("LocalizationKey() = %q, want empty", got)
	}
	if got := LocalizationKey(errors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
}

func TestPublicMessagePrefersCatalogOverInternalText(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(i18n.Default())

	got := PublicMessage(loc, EK(KindInvalidInput, "error.invalid_input", "raw detail"))
	if got != "The submitted form was invalid." {
		t.Fatalf("PublicMessage() = %q, want catalog text", got)
	}

	got = PublicMessage(loc, E(KindInvalidInput, "raw detail"))
	if got != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("PublicMessage() = %q, want %q", got, http.StatusText(http.StatusBadRequest))
	}
	if strings.Contains(got, "raw detail") {
		t.Fatalf("PublicMessage() leaked internal error text: %q", got)
	}

	if got := PublicMessage(nil, errors.New("boom")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(nil localizer) = %q, want %q", got, http.StatusText(http.StatusInternalServerError))
	}
}

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/students/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, E(KindNotFound, "missing"), module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="error-page"`) {
		t.Fatalf("body missing error page marker: %q", body)
	}
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("body missing localized not-found title: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/students/new", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, E(KindInvalidInput, "bad form"), module.Dependencies{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteAppErrorCoercesUnrenderableStatuses(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/daily/", nil)
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Something went wrong") {
		t.Fatalf("body missing server error title: %q", body)
	}
}

func TestWriteAppErrorLocalizesByLanguageResolver(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/daily/", nil)
	rr := httptest.NewRecorder()
	deps := module.Dependencies{
		ResolveLanguage: func(*http.Request) string { return "pt-BR" },
	}
	WriteAppError(rr, req, http.StatusNotFound, deps)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if body := rr.Body.String(); !strings.Contains(body, `lang="pt-BR"`) {
		t.Fatalf("body missing resolved language attribute: %q", body)
	}
}
