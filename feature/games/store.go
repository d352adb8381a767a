package games

import (
	"context"
	"fmt"

	"game-insights/feature/games/models"

	"gorm.io/gorm"
)

// Store provides access to the games table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new games store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the games table schema.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.GameRecord{})
}

// ListAll returns every engagement record in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]models.GameRecord, error) {
	var records []models.GameRecord
	if err := s.db.WithContext(ctx).Order("game_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return records, nil
}

// ReplaceAll replaces the full contents of the games table in one
// transaction. Bulk load is the only write path; records are immutable
// afterwards.
func (s *Store) ReplaceAll(ctx context.Context, records []models.GameRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.GameRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear games: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 500).Error; err != nil {
			return fmt.Errorf("failed to insert games: %w", err)
		}
		return nil
	})
}

// Count returns the number of engagement records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.GameRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return n, nil
}
