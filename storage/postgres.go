package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tip-collect-system/models"
)

// snapshotRow holds the whole document as a single jsonb row. The store
// contract stays whole-document; Postgres is just a durable place to put it.
type snapshotRow struct {
	ID       uint   `gorm:"primaryKey"`
	Document string `gorm:"type:jsonb;not null"`
}

func (snapshotRow) TableName() string { return "snapshots" }

// PostgresStore persists the snapshot in one database row.
type PostgresStore struct {
	DB *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) Load() (*models.Snapshot, error) {
	var row snapshotRow
	err := s.DB.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snap := models.NewSnapshot()
		if err := s.Save(snap); err != nil {
			return nil, err
		}
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot row: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(row.Document), &snap); err != nil {
		return nil, fmt.Errorf("snapshot row is corrupt: %w", err)
	}
	return &snap, nil
}

func (s *PostgresStore) Save(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	row := snapshotRow{ID: 1, Document: string(data)}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot row: %w", err)
	}
	return nil
}
