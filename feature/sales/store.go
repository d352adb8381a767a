package sales

import (
	"context"
	"fmt"

	"game-insights/feature/sales/models"

	"gorm.io/gorm"
)

// Store provides access to the sales table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new sales store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the sales table schema.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.SalesRecord{})
}

// ListAll returns every sales record in insertion order. Report ranking
// tie-breaks depend on this order being stable.
func (s *Store) ListAll(ctx context.Context) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := s.db.WithContext(ctx).Order("sale_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return records, nil
}

// ReplaceAll replaces the full contents of the sales table in one
// transaction.
func (s *Store) ReplaceAll(ctx context.Context, records []models.SalesRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.SalesRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear sales: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 500).Error; err != nil {
			return fmt.Errorf("failed to insert sales: %w", err)
		}
		return nil
	})
}

// Count returns the number of sales records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.SalesRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return n, nil
}
