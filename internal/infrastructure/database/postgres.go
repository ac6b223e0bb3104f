package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"userbook-backend/internal/config"
	"userbook-backend/pkg/logger"
)

// PostgresDB wraps the database handle and its lifecycle. The underlying
// *sql.DB is a connection pool shared by all in-flight requests; write
// serialization is left to PostgreSQL's own locking.
type PostgresDB struct {
	DB     *sql.DB
	Config *config.DatabaseConfig
}

func NewPostgresDB(cfg *config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) dsn() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.User,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.Database,
		db.Config.SSLMode,
	)
}

// Connect opens the pool and verifies connectivity, retrying with
// exponential backoff so a restarting database does not kill the process.
func (db *PostgresDB) Connect(ctx context.Context) error {
	handle, err := sql.Open("pgx", db.dsn())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	handle.SetMaxOpenConns(db.Config.MaxConns)
	handle.SetMaxIdleConns(db.Config.MinConns)
	handle.SetConnMaxLifetime(30 * time.Minute)
	handle.SetConnMaxIdleTime(5 * time.Minute)

	var lastErr error
	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		lastErr = handle.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			db.DB = handle
			logger.Info("database connected", map[string]interface{}{
				"host":    db.Config.Host,
				"attempt": attempt,
			})
			return nil
		}

		logger.Warn("database connection attempt failed", map[string]interface{}{
			"attempt": attempt,
			"error":   lastErr.Error(),
		})

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				handle.Close()
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	handle.Close()
	return fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// HealthCheck verifies the pool still reaches the database. Called by the
// health endpoint.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.DB.PingContext(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (db *PostgresDB) Close() error {
	if db.DB != nil {
		return db.DB.Close()
	}
	return nil
}
