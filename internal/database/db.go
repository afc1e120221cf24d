package database

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"housing-service/internal/config"
	"housing-service/internal/logger"
)

var (
	//go:embed sql/schema.sql
	schemaSQL string

	//go:embed sql/seed.sql
	seedSQL string
)

// Connect opens the PostgreSQL pool, retrying with backoff while the server comes up.
func Connect(ctx context.Context, cfg *config.Config, log *logger.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	err := retryWithBackoff(cfg.ConnectRetries, squareBackoff, func() error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DatabaseURL)
		return err
	}, log)
	if err != nil {
		return nil, fmt.Errorf("database.Connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Info("Connected to PostgreSQL successfully")
	return db, nil
}

// Migrate creates the schema and seeds the reference catalogs. It is safe to
// run repeatedly and is meant to run once per deployment, not per request.
func Migrate(ctx context.Context, db *sqlx.DB, log *logger.Logger) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database.Migrate begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("database.Migrate schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, seedSQL); err != nil {
		return fmt.Errorf("database.Migrate seed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database.Migrate commit: %w", err)
	}

	log.Info("Schema is ready, reference data seeded")
	return nil
}

func squareBackoff(attempt int) time.Duration {
	return time.Duration(attempt*attempt) * time.Second
}

// retryWithBackoff retries fn up to maxRetries times, sleeping backoff(attempt) between tries
func retryWithBackoff(maxRetries int, backoff func(int) time.Duration, fn func() error, log *logger.Logger) error {
	if maxRetries < 1 {
		maxRetries = 1
	}
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			log.Warn("Retrying (attempt %d/%d) after %v...", attempt+1, maxRetries, wait)
			time.Sleep(wait)
		}
		if err := fn(); err != nil {
			lastErr = err
			log.Error("Attempt %d failed: %v", attempt+1, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed, last error: %w", maxRetries, lastErr)
}
