package model

import "time"

// StateRecord holds one serialized EcosphereState, keyed by storage key
// (shared guest key or per-email key). Every mutation overwrites the whole
// payload; nothing reads individual fields at this layer.
type StateRecord struct {
	StorageKey string    `gorm:"column:storage_key;primaryKey;size:320"`
	Payload    []byte    `gorm:"column:payload;type:mediumblob;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (StateRecord) TableName() string {
	return "state_records"
}
