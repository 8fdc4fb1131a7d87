package migrate

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("SCHOOLDESK_DB_PATH", "env.db")

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-db-path", "flag.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "flag.db" {
		t.Fatalf("db path = %q, want flag override", cfg.DBPath)
	}
}

func TestRunAppliesMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "app.db")

	if err := Run(context.Background(), Config{DBPath: dbPath}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(context.Background(), Config{DBPath: dbPath}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	applied, err := sqlite.Migrate(dbPath)
	if err != nil {
		t.Fatalf("inspect migrations: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("migrations were reapplied: %v", applied)
	}
}

func TestRunRejectsUnusablePath(t *testing.T) {
	if err := Run(context.Background(), Config{DBPath: ""}); err == nil {
		t.Fatalf("run with empty path should fail")
	}
}
