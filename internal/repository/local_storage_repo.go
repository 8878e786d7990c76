package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"village/internal/database"
)

// SQLStorage keeps local storage items in the local_storage table
type SQLStorage struct {
	db *database.DB
}

// NewSQLStorage creates a new SQL-backed local storage
func NewSQLStorage(db *database.DB) *SQLStorage {
	return &SQLStorage{db: db}
}

// GetItem retrieves a stored value by key
func (r *SQLStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := "SELECT storage_value FROM local_storage WHERE storage_key = ?"
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get item %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem inserts or replaces a stored value
func (r *SQLStorage) SetItem(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Dialect.UpsertItemQuery(), key, value); err != nil {
		return fmt.Errorf("failed to set item %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes a stored value. Removing a missing key is not an error.
func (r *SQLStorage) RemoveItem(ctx context.Context, key string) error {
	query := "DELETE FROM local_storage WHERE storage_key = ?"
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove item %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database
func (r *SQLStorage) Close() error {
	return r.db.Close()
}
