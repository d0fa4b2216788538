package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"tip-collect-system/storage"
	"tip-collect-system/utils"
)

// BackupWorker periodically copies the snapshot document to the backup
// bucket. The store stays the source of truth; backups are for disaster
// recovery only.
type BackupWorker struct {
	Store    *storage.Serialized
	Uploader *utils.BackupUploader
	Interval time.Duration
}

func NewBackupWorker(store *storage.Serialized, uploader *utils.BackupUploader, interval time.Duration) *BackupWorker {
	return &BackupWorker{Store: store, Uploader: uploader, Interval: interval}
}

func (w *BackupWorker) Start() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(w.Interval),
		gocron.NewTask(func() {
			if err := w.runOnce(context.Background()); err != nil {
				log.Printf("[BACKUP] %v", err)
			}
		}),
	)
	log.Printf("[BACKUP] snapshot backups every %s", w.Interval)
}

func (w *BackupWorker) runOnce(ctx context.Context) error {
	snap, err := w.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("backups/store-%s.json", time.Now().UTC().Format("20060102-150405"))
	if err := w.Uploader.Upload(ctx, key, data); err != nil {
		return err
	}
	log.Printf("✅ [BACKUP] uploaded %s (%d staff, %d qr, %d tips)", key, len(snap.Staff), len(snap.Qr), len(snap.Tips))
	return nil
}
