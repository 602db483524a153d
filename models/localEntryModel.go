package models

import (
	"time"

	"gorm.io/datatypes"
)

// LocalEntry is one visitor-scoped key of the SQL session store.
type LocalEntry struct {
	Key       string         `gorm:"primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}
