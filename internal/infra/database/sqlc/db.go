package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"todo-api/pkg/resource"
)

const maintenanceDatabase = "postgres"

// DSN builds the lib/pq connection string for the given database name
func DSN(database string) string {
	params := [][2]string{
		{"host", resource.GetString("app.db.host")},
		{"port", resource.GetString("app.db.port")},
		{"user", resource.GetString("app.db.username")},
		{"password", resource.GetString("app.db.password")},
		{"dbname", database},
		{"sslmode", resource.GetString("app.db.ssl-mode")},
		{"search_path", resource.GetString("app.db.schema")},
	}

	pairs := make([]string, 0, len(params))
	for _, param := range params {
		pairs = append(pairs, param[0]+"="+quoteDSNValue(param[1]))
	}
	return strings.Join(pairs, " ")
}

// quoteDSNValue single-quotes a key/value connection parameter, escaping backslashes and quotes
func quoteDSNValue(value string) string {
	return "'" + dsnEscaper.Replace(value) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Open creates the configured database if needed and returns a bounded connection pool.
// When the pool is exhausted callers wait for a free connection.
func Open(ctx context.Context) (*sql.DB, error) {
	database := resource.GetString("app.db.database")
	if err := ensureDatabase(ctx, database); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", DSN(database))
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	ConfigurePool(db)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}

// ConfigurePool applies the pool limits from the properties
func ConfigurePool(db *sql.DB) {
	db.SetMaxOpenConns(resource.GetInt("app.db.max-open-conns"))
	db.SetMaxIdleConns(resource.GetInt("app.db.max-idle-conns"))
	db.SetConnMaxLifetime(resource.GetDuration("app.db.conn-max-lifetime"))
}

// ensureDatabase creates the application database through the maintenance database when it is absent
func ensureDatabase(ctx context.Context, database string) error {
	admin, err := sql.Open("postgres", DSN(maintenanceDatabase))
	if err != nil {
		return fmt.Errorf("failed to open maintenance DB: %w", err)
	}
	defer admin.Close()

	var exists bool
	err = admin.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", database).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", database, err)
	}
	if exists {
		return nil
	}

	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(database)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", database, err)
	}
	return nil
}
