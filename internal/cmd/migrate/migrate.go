// Package migrate applies the bundled schema migrations to the SQLite
// database and logs which ones ran.
package migrate

import (
	"context"
	"flag"
	"fmt"
	"log"

	platformcmd "github.com/schooldesk/theschooldesk.app/internal/platform/cmd"
	"github.com/schooldesk/theschooldesk.app/internal/platform/config"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

// Config holds the migrate command configuration.
type Config struct {
	DBPath string `env:"SCHOOLDESK_DB_PATH" envDefault:"data/schooldesk.db"`
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
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run applies pending migrations.
func Run(_ context.Context, cfg Config) error {
	applied, err := sqlite.Migrate(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.DBPath, err)
	}
	if len(applied) == 0 {
		log.Printf("database is up to date")
		return nil
	}
	for _, name := range applied {
		log.Printf("applied %s", name)
	}
	return nil
}
