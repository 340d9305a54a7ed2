package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type Filter struct {
	ActorID  *uuid.UUID
	ItemType string

	Limit  int
	Offset int
}

// Entry is a history record joined with the actor's display name.
type Entry struct {
	models.HistoryRecord
	ActorName string `json:"actor_name"`
}

type Repository interface {
	// ListHistory returns newest first and the total before paging.
	ListHistory(ctx context.Context, filter Filter) ([]Entry, int64, error)
}
