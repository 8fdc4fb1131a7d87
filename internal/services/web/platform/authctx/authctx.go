// Package authctx provides web authentication seams.
package authctx

import (
	"context"
	"net/http"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/sessioncookie"
)

// IsAuthenticated reports whether the current request should access protected routes.
type IsAuthenticated func(*http.Request) bool

// CookiePresenceAuth treats any session cookie as authenticated.
//
// Only suitable for surfaces that re-validate the session downstream.
func CookiePresenceAuth() IsAuthenticated {
	return func(r *http.Request) bool {
		if r == nil {
			return false
		}
		_, ok := sessioncookie.Read(r)
		return ok
	}
}

// ValidatedSessionAuth authenticates requests only through validated session cookies.
func ValidatedSessionAuth(validate func(context.Context, string) bool) IsAuthenticated {
	return func(r *http.Request) bool {
		if r == nil || validate == nil {
			return false
		}
		token, ok := sessioncookie.Read(r)
		if !ok {
			return false
		}
		return validate(r.Context(), token)
	}
}
