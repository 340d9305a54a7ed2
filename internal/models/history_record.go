package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is append-only: rows are inserted and never updated or removed.
type HistoryRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ActorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"actor_id"`
	ItemType string    `gorm:"size:30;not null;index" json:"item_type"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	Details  string    `gorm:"type:text" json:"details"`

	RecordedAt time.Time `gorm:"not null;index" json:"recorded_at"`
}
