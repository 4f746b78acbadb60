package repositories

import (
	"context"
	"errors"
	"time"

	"rocketshoes-cart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV Store Repository (postgres or sqlite through gorm)
type sqlCartStore struct {
	db *gorm.DB
}

func NewSQLCartStore(db *gorm.DB) CartStore {
	return &sqlCartStore{db: db}
}

// AutoMigrate creates the kv_entries table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntry{})
}

func (r *sqlCartStore) Read(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (r *sqlCartStore) Write(ctx context.Context, key string, blob []byte) error {
	entry := models.KVEntry{
		Key:       key,
		Value:     blob,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
