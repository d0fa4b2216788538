package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tip-collect-system/models"
)

// FileStore persists the snapshot as one JSON document on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		// First use: initialize an empty document on disk and return it.
		snap := models.NewSnapshot()
		if err := s.Save(snap); err != nil {
			return nil, err
		}
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("store file %s is corrupt: %w", s.path, err)
	}
	if snap.Staff == nil {
		snap.Staff = []models.StaffMember{}
	}
	if snap.Qr == nil {
		snap.Qr = []models.QrBinding{}
	}
	if snap.Tips == nil {
		snap.Tips = []models.TipRecord{}
	}
	return &snap, nil
}

func (s *FileStore) Save(snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
