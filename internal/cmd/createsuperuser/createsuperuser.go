// Package createsuperuser ensures the administrative account exists with the
// configured credentials. The command is idempotent so repeated container
// starts converge on the same account.
package createsuperuser

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
	"github.com/schooldesk/theschooldesk.app/internal/platform/config"
	"github.com/schooldesk/theschooldesk.app/internal/platform/timeouts"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

// Config holds the createsuperuser command configuration. The password is
// environment-only so it never shows up in process listings.
type Config struct {
	DBPath   string `env:"SCHOOLDESK_DB_PATH" envDefault:"data/schooldesk.db"`
	Email    string `env:"SCHOOLDESK_SUPERUSER_EMAIL" envDefault:"admin@theschooldesk.app"`
	Password string `env:"SCHOOLDESK_SUPERUSER_PASSWORD"`
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
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database file path")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "superuser email address")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run creates or refreshes the superuser account.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.Password) == "" {
		return errors.New("SCHOOLDESK_SUPERUSER_PASSWORD is required")
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.ManagementCommand)
	defer cancel()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	service := auth.Service{Store: store}
	created, err := service.EnsureSuperuser(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("ensure superuser: %w", err)
	}
	if created {
		log.Printf("superuser %s created", cfg.Email)
	} else {
		log.Printf("superuser %s already exists, password refreshed", cfg.Email)
	}
	return nil
}
