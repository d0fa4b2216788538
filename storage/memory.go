package storage

import (
	"sync"

	"tip-collect-system/models"
)

// MemoryStore keeps the snapshot in process memory. Used by tests and the
// zero-config dev path; everything is lost on restart.
type MemoryStore struct {
	mu   sync.Mutex
	snap *models.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		s.snap = models.NewSnapshot()
	}
	return s.snap.Clone(), nil
}

func (s *MemoryStore) Save(snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	return nil
}
