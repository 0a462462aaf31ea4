package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestConnect(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	log := zerolog.Nop()

	t.Run("Missing DATABASE_URL", func(t *testing.T) {
		pool, err := Connect(context.Background(), "", log)
		if err == nil {
			pool.Close()
			t.Error("expected error when DATABASE_URL is missing")
		}
	})

	t.Run("Invalid DATABASE_URL format", func(t *testing.T) {
		pool, err := Connect(context.Background(), "invalid-dsn", log)
		if err == nil {
			pool.Close()
			t.Error("expected error for invalid DATABASE_URL format")
		}
	})

	t.Run("Valid Connection", func(t *testing.T) {
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping valid connection test")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		pool, err := Connect(ctx, dsn, log)
		if err != nil {
			t.Fatalf("failed to connect: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			t.Errorf("failed to ping: %v", err)
		}
	})

	t.Run("Context Cancelled", func(t *testing.T) {
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping context cancelled test")
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // cancel immediately

		pool, err := Connect(ctx, dsn, log)
		if err == nil {
			pool.Close()
			t.Error("expected error for cancelled context")
		}
	})
}

func TestMigrate(t *testing.T) {
	t.Run("Missing DATABASE_URL", func(t *testing.T) {
		if err := Migrate("", "migrations"); err == nil {
			t.Error("expected error when DATABASE_URL is missing")
		}
	})

	t.Run("Apply", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping migration test")
		}
		if err := Migrate(dsn, "migrations"); err != nil {
			t.Fatalf("migrate: %v", err)
		}
		// Second run is a no-op.
		if err := Migrate(dsn, "migrations"); err != nil {
			t.Fatalf("migrate again: %v", err)
		}
	})
}
