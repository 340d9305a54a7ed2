package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	step time.Duration
	now  timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	step time.Duration,
	now timezone.Clock,
) *GetAvailability {
	if now == nil {
		now = timezone.Now
	}
	if step <= 0 {
		step = time.Hour
	}
	return &GetAvailability{
		repo: repo,
		step: step,
		now:  now,
	}
}

// Execute lists the free grid points of one day.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.TimeSlot, error) {

	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidDateTime, "date must be YYYY-MM-DD")
	}
	date = day.Format(domain.DateLayout)

	booked, err := uc.repo.ListActiveOnDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(date, uc.step, uc.now(), booked), nil
}
