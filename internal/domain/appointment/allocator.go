package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

// Allocator answers whether a slot is free. Call it with the transaction-scoped
// repository so the check and the write that follows share one transaction.
type Allocator struct {
	repo Repository
}

func NewAllocator(repo Repository) *Allocator {
	return &Allocator{repo: repo}
}

func (a *Allocator) IsSlotFree(
	ctx context.Context,
	slot Slot,
	excluding *uuid.UUID,
) (bool, error) {
	n, err := a.repo.CountActiveAtSlot(ctx, slot, excluding)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// AssertFree turns an occupied slot into a slot_conflict error.
func (a *Allocator) AssertFree(
	ctx context.Context,
	slot Slot,
	excluding *uuid.UUID,
) error {
	free, err := a.IsSlotFree(ctx, slot, excluding)
	if err != nil {
		return err
	}
	if !free {
		return httperr.ErrBusinessf(httperr.CodeSlotConflict, slot.String())
	}
	return nil
}
