package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities.
// ID is a UUID string so the memory, MySQL and MongoDB backends share one
// identifier format.
type Base struct {
	ID        string    `json:"id"       bson:"_id"      gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created"  bson:"created"`
	UpdatedAt time.Time `json:"modified" bson:"modified"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// Stamp assigns an ID and timestamps for backends without insert hooks.
func (b *Base) Stamp() {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
