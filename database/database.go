package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"edulytics/config"

	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
)

// Connect opens the SQL Server handle and applies pool limits. Opening does
// not dial; connectivity is checked with Ping so the server can come up even
// while the database is down.
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlserver", BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %w", err)
	}

	// Set up connection pooling
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// BuildDSN assembles the sqlserver connection string from configuration.
func BuildDSN(cfg *config.Config) string {
	u := &url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:   fmt.Sprintf("%s:%d", cfg.DBHost, cfg.DBPort),
	}

	q := url.Values{}
	if cfg.DBName != "" {
		q.Set("database", cfg.DBName)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Ping verifies connectivity within the given timeout.
func Ping(db *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return db.PingContext(ctx)
}
