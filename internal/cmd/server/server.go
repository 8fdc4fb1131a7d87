// Package server wires the HTTP serving command: configuration, the SQLite
// store, and the web server lifecycle.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
	"github.com/schooldesk/theschooldesk.app/internal/platform/config"
	"github.com/schooldesk/theschooldesk.app/internal/services/web"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/requestmeta"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr  string `env:"SCHOOLDESK_HTTP_ADDR" envDefault:"0.0.0.0:8001"`
	DBPath    string `env:"SCHOOLDESK_DB_PATH" envDefault:"data/schooldesk.db"`
	SecretKey string `env:"SCHOOLDESK_SECRET_KEY"`
}

// ParseConfig loads an optional .env file, environment defaults, and flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotenv(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database file path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the store and serves HTTP until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return errors.New("SCHOOLDESK_SECRET_KEY is required")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Auth:     &auth.Service{Store: store},
		Sessions: &auth.Sessions{Secret: []byte(cfg.SecretKey)},
		// The container runs behind a TLS-terminating proxy.
		CookiePolicy: requestmeta.SchemePolicy{TrustForwardedProto: true},
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
