package createsuperuser

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/auth"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("SCHOOLDESK_SUPERUSER_EMAIL", "root@example.com")
	t.Setenv("SCHOOLDESK_SUPERUSER_PASSWORD", "from-the-env")

	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Email != "root@example.com" {
		t.Fatalf("email = %q, want env value", cfg.Email)
	}
	if cfg.Password != "from-the-env" {
		t.Fatalf("password = %q, want env value", cfg.Password)
	}
}

func TestRunRequiresPassword(t *testing.T) {
	err := Run(context.Background(), Config{
		DBPath: filepath.Join(t.TempDir(), "app.db"),
		Email:  "admin@example.com",
	})
	if err == nil {
		t.Fatalf("run without a password should fail")
	}
}

func TestRunCreatesAndRefreshesSuperuser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "app.db")
	cfg := Config{DBPath: dbPath, Email: "admin@example.com", Password: "first-password"}

	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("first run: %v", err)
	}

	cfg.Password = "second-password"
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("second run: %v", err)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	service := auth.Service{Store: store}
	user, err := service.Authenticate(context.Background(), "admin@example.com", "second-password")
	if err != nil {
		t.Fatalf("authenticate with refreshed password: %v", err)
	}
	if !user.IsSuperuser {
		t.Fatalf("account is not flagged as superuser")
	}
	if _, err := service.Authenticate(context.Background(), "admin@example.com", "first-password"); err == nil {
		t.Fatalf("stale password still authenticates")
	}
}
