// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/requestmeta"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

// Viewer contains the signed-in account state shared by app pages.
type Viewer struct {
	UserID      string
	Email       string
	SchoolID    string
	IsSuperuser bool
}

// SignedIn reports whether the viewer carries an authenticated account.
func (v Viewer) SignedIn() bool { return v.UserID != "" }

// ResolveViewer resolves viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveUserID resolves the authenticated user id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Dependencies carries the shared collaborators handed to module mounts.
type Dependencies struct {
	Store           storage.Store
	Auth            *auth.Service
	Sessions        *auth.Sessions
	CookiePolicy    requestmeta.SchemePolicy
	ResolveViewer   ResolveViewer
	ResolveUserID   ResolveUserID
	ResolveLanguage ResolveLanguage
	Clock           func() time.Time
}

// Now returns the wall clock, defaulting to time.Now.
func (d Dependencies) Now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

// Today returns the current date in UTC with the clock stripped.
func (d Dependencies) Today() time.Time {
	return schedule.DateOf(d.Now().UTC())
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
