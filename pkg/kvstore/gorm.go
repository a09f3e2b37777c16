package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"imobhub_backend/internal/model"
)

// GormBackend keeps one storage_entries row per key.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend migrates the storage_entries table and returns the backend.
func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&model.StorageEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage entries: %w", err)
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Get(ctx context.Context, key string) (string, error) {
	var entry model.StorageEntry
	err := b.db.WithContext(ctx).Where("storage_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return entry.Value, nil
}

func (b *GormBackend) Set(ctx context.Context, key, value string) error {
	entry := model.StorageEntry{Key: key, Value: value}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (b *GormBackend) Delete(ctx context.Context, key string) error {
	if err := b.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&model.StorageEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
