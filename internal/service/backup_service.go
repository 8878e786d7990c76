package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"village/internal/models"
	"village/internal/repository"
)

// BackupVersion is written to every export
const BackupVersion = "1.0"

// ErrEmptyBackup is returned when a backup file carries no user record
var ErrEmptyBackup = errors.New("backup contains no user")

// BackupData is the portable form of the saved session record
type BackupData struct {
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exported_at"`
	StorageKey string       `json:"storage_key"`
	User       *models.User `json:"user"`
}

// BackupService copies the saved session record between storage and JSON files
type BackupService struct {
	storage    repository.LocalStorage
	storageKey string
	now        func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(storage repository.LocalStorage, storageKey string) *BackupService {
	return &BackupService{storage: storage, storageKey: storageKey, now: time.Now}
}

// Export writes the saved session record to a file
func (s *BackupService) Export(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(ctx, file); err != nil {
		return err
	}

	log.Info().Str("path", outputPath).Msg("session exported")
	return nil
}

// ExportToWriter writes the saved session record as indented JSON. A missing
// record exports with a null user.
func (s *BackupService) ExportToWriter(ctx context.Context, w io.Writer) error {
	backup := &BackupData{
		Version:    BackupVersion,
		ExportedAt: s.now().UTC(),
		StorageKey: s.storageKey,
	}

	raw, ok, err := s.storage.GetItem(ctx, s.storageKey)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return fmt.Errorf("failed to decode saved session: %w", err)
		}
		backup.User = &user
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import replaces the saved session record with the one in a backup file
func (s *BackupService) Import(ctx context.Context, inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	if err := s.ImportFromReader(ctx, file); err != nil {
		return err
	}

	log.Info().Str("path", inputPath).Msg("session imported")
	return nil
}

// ImportFromReader decodes a backup and writes its user under the configured key
func (s *BackupService) ImportFromReader(ctx context.Context, r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.User == nil {
		return ErrEmptyBackup
	}
	if backup.Version != BackupVersion {
		log.Warn().Str("version", backup.Version).Msg("importing backup from a different version")
	}

	data, err := json.Marshal(backup.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.storage.SetItem(ctx, s.storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
