package history

import (
	"context"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/history"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type ListHistoryInput struct {
	Actor    identity.Actor
	ItemType string

	Page  int
	Limit int
}

type ListHistoryOutput struct {
	Entries []domain.Entry
	Page    int
	Limit   int
	Total   int64
}

// ListHistory shows the operator everything. A customer only sees the
// cancellations they made themselves.
type ListHistory struct {
	repo domain.Repository
}

func NewListHistory(repo domain.Repository) *ListHistory {
	return &ListHistory{repo: repo}
}

func (uc *ListHistory) Execute(
	ctx context.Context,
	in ListHistoryInput,
) (*ListHistoryOutput, error) {

	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	filter := domain.Filter{
		ItemType: in.ItemType,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	if !in.Actor.IsOperator() {
		actorID := in.Actor.ID
		filter.ActorID = &actorID
		filter.ItemType = string(audit.ItemAppointmentCanceled)
	}

	entries, total, err := uc.repo.ListHistory(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	return &ListHistoryOutput{
		Entries: entries,
		Page:    page,
		Limit:   limit,
		Total:   total,
	}, nil
}
