package model

import "time"

// StorageEntry is one key of the key-value area when it lives in SQL.
// Value is plain text so a malformed payload is stored as-is.
type StorageEntry struct {
	Key       string    `gorm:"column:storage_key;primaryKey;size:100"`
	Value     string    `gorm:"column:payload;type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
