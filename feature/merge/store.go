package merge

import (
	"context"
	"fmt"

	"game-insights/feature/merge/models"

	"gorm.io/gorm"
)

// Store provides access to the merged table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new merged-record store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the merged table schema.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.MergedRecord{})
}

// ListAll returns every merged record in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]models.MergedRecord, error) {
	var records []models.MergedRecord
	if err := s.db.WithContext(ctx).Order("merged_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list merged records: %w", err)
	}
	return records, nil
}

// ReplaceAll replaces the full contents of the merged table in one
// transaction. The merged table is derived state and is always rebuilt
// wholesale; there is no incremental update path.
func (s *Store) ReplaceAll(ctx context.Context, records []models.MergedRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MergedRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear merged table: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 500).Error; err != nil {
			return fmt.Errorf("failed to insert merged records: %w", err)
		}
		return nil
	})
}

// Count returns the number of merged records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.MergedRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count merged records: %w", err)
	}
	return n, nil
}
