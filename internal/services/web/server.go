package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/platform/timeouts"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/app"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/httpx"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/observability"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/requestmeta"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/static"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr     string
	Store        storage.Store
	Auth         *auth.Service
	Sessions     *auth.Sessions
	CookiePolicy requestmeta.SchemePolicy
	Logger       *log.Logger
	Clock        func() time.Time
}

// NewHandler composes the full request handler: module mounts, static
// assets, and the shared middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("sessions are required")
	}

	resolver := newPrincipalResolver(cfg)
	deps := module.Dependencies{
		Store:           cfg.Store,
		Auth:            cfg.Auth,
		Sessions:        cfg.Sessions,
		CookiePolicy:    cfg.CookiePolicy,
		ResolveViewer:   resolver.resolveViewer,
		ResolveUserID:   resolver.resolveRequestUserID,
		ResolveLanguage: resolver.resolveRequestLanguage,
		Clock:           cfg.Clock,
	}
	root, err := app.BuildRootHandler(app.Config{
		Dependencies:     deps,
		PublicModules:    modules.DefaultPublicModules(),
		ProtectedModules: modules.DefaultProtectedModules(),
	}, resolver.authRequired())
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.Handle("/", root)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		observability.TraceRequests(),
		withRequestPrincipalState(),
	), nil
}

// withRequestPrincipalState seeds per-request memoization so the session
// token, viewer, and language are each resolved at most once per request.
func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, &requestPrincipalState{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromContext(ctx context.Context) *requestPrincipalState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	return requestPrincipalStateFromContext(r.Context())
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
