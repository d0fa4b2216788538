// Package storage persists the tip system's single document snapshot.
// Every backend implements the same whole-document contract: Load returns
// the current snapshot (creating an empty one on first use), Save replaces
// it in full. There are no partial updates.
package storage

import "tip-collect-system/models"

type Store interface {
	// Load returns the current snapshot, initializing an empty one if
	// nothing has been persisted yet. I/O failures propagate to the caller.
	Load() (*models.Snapshot, error)
	// Save replaces the persisted snapshot with the given one.
	Save(snap *models.Snapshot) error
}
