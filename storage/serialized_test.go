package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"tip-collect-system/models"
)

// Regression test for the lost-update race: concurrent read-modify-write
// cycles must not overwrite each other's appends.
func TestUpdateSerializesConcurrentWrites(t *testing.T) {
	store := NewSerialized(NewMemoryStore())

	const writers = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Update(func(snap *models.Snapshot) error {
				snap.Staff = append(snap.Staff, models.StaffMember{
					ID:   fmt.Sprintf("staff-%d", i),
					Name: fmt.Sprintf("Member %d", i),
					Role: "Staff",
				})
				return nil
			})
			if err != nil {
				t.Errorf("update %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snap.Staff) != writers {
		t.Errorf("expected %d staff after concurrent updates, got %d", writers, len(snap.Staff))
	}
	seen := map[string]bool{}
	for _, m := range snap.Staff {
		if seen[m.ID] {
			t.Errorf("duplicate staff id %s", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestUpdateDoesNotPersistOnError(t *testing.T) {
	store := NewSerialized(NewMemoryStore())
	boom := errors.New("boom")

	_, err := store.Update(func(snap *models.Snapshot) error {
		snap.Staff = append(snap.Staff, models.StaffMember{ID: "s1", Name: "Alice"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to propagate, got %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snap.Staff) != 0 {
		t.Errorf("mutation persisted despite error: %+v", snap.Staff)
	}
}
