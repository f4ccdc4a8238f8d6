package db

import (
	"context"
	"testing"
	"time"
)

func TestConnectRejectsEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultServerOptions()); err == nil {
		t.Fatal("expected error for empty DATABASE_URL")
	}
}

func TestOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_PING_TIMEOUT", "2s")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 3 {
		t.Fatalf("expected override 3, got %d", opts.MaxOpenConns)
	}
	if opts.PingTimeout != 2*time.Second {
		t.Fatalf("expected 2s ping timeout, got %v", opts.PingTimeout)
	}
	if opts.MaxIdleConns != DefaultServerOptions().MaxIdleConns {
		t.Fatalf("expected untouched default, got %d", opts.MaxIdleConns)
	}
}

func TestOptionsFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != DefaultServerOptions().MaxOpenConns {
		t.Fatalf("expected default kept, got %d", opts.MaxOpenConns)
	}
}

func TestRunMigrationsNilDBIsNoop(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
