package service

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/config"
	"village/internal/repository"
)

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := repository.NewMemoryStorage()
	session := NewSessionService(source, config.DefaultStorageKey)
	require.NoError(t, session.Restore(ctx))
	user := session.Login(ctx, "", "")

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewBackupService(source, config.DefaultStorageKey).Export(ctx, path))

	target := repository.NewMemoryStorage()
	require.NoError(t, NewBackupService(target, config.DefaultStorageKey).Import(ctx, path))

	restored := NewSessionService(target, config.DefaultStorageKey)
	require.NoError(t, restored.Restore(ctx))
	got, ok := restored.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestBackupExportWithoutSession(t *testing.T) {
	backup := NewBackupService(repository.NewMemoryStorage(), config.DefaultStorageKey)
	backup.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	require.NoError(t, backup.ExportToWriter(context.Background(), &buf))

	var data BackupData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, BackupVersion, data.Version)
	assert.Equal(t, config.DefaultStorageKey, data.StorageKey)
	assert.Nil(t, data.User)
	assert.True(t, data.ExportedAt.Equal(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)))
}

func TestBackupImportErrors(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	backup := NewBackupService(storage, config.DefaultStorageKey)

	err := backup.ImportFromReader(ctx, strings.NewReader(`{"version":"1.0","user":null}`))
	assert.ErrorIs(t, err, ErrEmptyBackup)

	err = backup.ImportFromReader(ctx, strings.NewReader(`not json`))
	assert.ErrorContains(t, err, "failed to decode backup")

	_, ok, err := storage.GetItem(ctx, config.DefaultStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, backup.Import(ctx, filepath.Join(t.TempDir(), "missing.json")))
}

func TestBackupExportStorageFailure(t *testing.T) {
	storage := repository.NewMemoryStorage()
	require.NoError(t, storage.Close())
	backup := NewBackupService(storage, config.DefaultStorageKey)

	err := backup.ExportToWriter(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, repository.ErrStorageClosed)
}
