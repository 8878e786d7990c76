package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialects(t *testing.T) {
	tests := []struct {
		name       string
		dialect    Dialect
		driver     string
		subdir     string
		upsertHint string
	}{
		{name: "SQLite", dialect: NewSQLiteDialect(), driver: "sqlite3", subdir: "sqlite", upsertHint: "ON CONFLICT(storage_key)"},
		{name: "PostgreSQL", dialect: NewPostgresDialect(), driver: "postgres", subdir: "postgres", upsertHint: "ON CONFLICT (storage_key)"},
		{name: "MySQL", dialect: NewMySQLDialect(), driver: "mysql", subdir: "mysql", upsertHint: "ON DUPLICATE KEY UPDATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.driver, tt.dialect.DriverName())
			assert.Equal(t, tt.subdir, tt.dialect.MigrationsSubdir())
			assert.Contains(t, tt.dialect.UpsertItemQuery(), tt.upsertHint)
			assert.Contains(t, tt.dialect.CreateMigrationsTableQuery(), "CREATE TABLE IF NOT EXISTS migrations")
		})
	}
}

func TestDialectDSN(t *testing.T) {
	cfg := DialectConfig{Path: "./village.db", URL: "postgres://localhost/village"}

	assert.Equal(t, "./village.db", NewSQLiteDialect().DSN(cfg))
	assert.Equal(t, "postgres://localhost/village", NewPostgresDialect().DSN(cfg))
	assert.Equal(t, "postgres://localhost/village", NewMySQLDialect().DSN(cfg))
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT storage_value FROM local_storage WHERE storage_key = ?",
			expected: "SELECT storage_value FROM local_storage WHERE storage_key = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "DELETE FROM local_storage WHERE storage_key = ?",
			expected: "DELETE FROM local_storage WHERE storage_key = $1",
		},
		{
			name:    "PostgreSQL upsert",
			dialect: NewPostgresDialect(),
			query:   NewPostgresDialect().UpsertItemQuery(),
			expected: "INSERT INTO local_storage (storage_key, storage_value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP) " +
				"ON CONFLICT (storage_key) DO UPDATE SET storage_value = EXCLUDED.storage_value, updated_at = CURRENT_TIMESTAMP",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "SELECT COUNT(*) FROM migrations WHERE filename = ?",
			expected: "SELECT COUNT(*) FROM migrations WHERE filename = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dialect.RewriteQuery(tt.query))
		})
	}
}
