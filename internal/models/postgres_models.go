package models

import "time"

// KVEntry model - PostgreSQL/SQLite (fixed-key blob storage for the cart)
type KVEntry struct {
	Key       string    `gorm:"column:storage_key;primaryKey;size:191" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
