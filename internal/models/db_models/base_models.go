package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by every history row. Rows are append-only, so there
// is no update or soft-delete bookkeeping.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	CreatedAt int64     `gorm:"autoCreateTime:milli;index" json:"createdAt"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = time.Now().UnixMilli()
	}
	return nil
}

func (b BaseModel) RecordID() uuid.UUID { return b.ID }
