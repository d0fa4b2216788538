package storage

import (
	"sync"

	"tip-collect-system/models"
)

// Serialized funnels every read-modify-write through one mutex so two
// concurrent mutations can never interleave a load and a save and drop
// each other's changes. All services go through this wrapper, never the
// backend directly.
type Serialized struct {
	mu      sync.Mutex
	backend Store
}

func NewSerialized(backend Store) *Serialized {
	return &Serialized{backend: backend}
}

// Load returns the current snapshot.
func (s *Serialized) Load() (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Load()
}

// Update loads the snapshot, applies fn to it, and saves the result, all
// under the writer lock. If fn returns an error nothing is persisted.
func (s *Serialized) Update(fn func(snap *models.Snapshot) error) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.backend.Load()
	if err != nil {
		return nil, err
	}
	if err := fn(snap); err != nil {
		return nil, err
	}
	if err := s.backend.Save(snap); err != nil {
		return nil, err
	}
	return snap, nil
}
