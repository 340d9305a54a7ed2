package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/dto"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
)

// ======================================================
// List
// ======================================================

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(
	repo domain.Repository,
) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

// Execute returns the actor's appointments, newest slot first. Canceled ones
// stay visible.
func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	actor identity.Actor,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		CustomerID: &actor.ID,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(appointments), nil
}

// ======================================================
// Upcoming
// ======================================================

type GetUpcomingAppointment struct {
	repo domain.Repository
	now  timezone.Clock
}

func NewGetUpcomingAppointment(
	repo domain.Repository,
	now timezone.Clock,
) *GetUpcomingAppointment {
	if now == nil {
		now = timezone.Now
	}
	return &GetUpcomingAppointment{repo: repo, now: now}
}

// Execute finds the nearest Pending or Approved appointment still ahead.
// nil means there is none.
func (uc *GetUpcomingAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
) (*dto.UpcomingDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		CustomerID: &actor.ID,
	})
	if err != nil {
		return nil, err
	}

	now := uc.now()

	var (
		best      *models.Appointment
		bestStart time.Time
	)
	for i := range appointments {
		ap := &appointments[i]
		if ap.IsDeleted {
			continue
		}
		if s := domain.Status(ap.Status); s != domain.StatusPending && s != domain.StatusApproved {
			continue
		}

		start, err := domain.Slot{Date: ap.SlotDate, Time: ap.SlotTime}.Start(now.Location())
		if err != nil || !start.After(now) {
			continue
		}
		if best == nil || start.Before(bestStart) {
			best, bestStart = ap, start
		}
	}

	if best == nil {
		return nil, nil
	}

	return &dto.UpcomingDTO{
		ID:      best.ID,
		Status:  best.Status,
		PlateNo: best.Vehicle.PlateNo,
		Date:    best.SlotDate,
		Time:    best.SlotTime,
	}, nil
}

// ======================================================
// Latest status message
// ======================================================

type GetLatestStatusMessage struct {
	repo domain.Repository
}

func NewGetLatestStatusMessage(repo domain.Repository) *GetLatestStatusMessage {
	return &GetLatestStatusMessage{repo: repo}
}

// Execute returns the message of the most recently booked appointment that has
// been decided on or canceled. nil means nothing to show yet.
func (uc *GetLatestStatusMessage) Execute(
	ctx context.Context,
	actor identity.Actor,
) (*dto.StatusMessageDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		CustomerID: &actor.ID,
	})
	if err != nil {
		return nil, err
	}

	var latest *models.Appointment
	for i := range appointments {
		ap := &appointments[i]
		switch domain.Status(ap.Status) {
		case domain.StatusApproved, domain.StatusRejected,
			domain.StatusCompleted, domain.StatusCanceled:
		default:
			continue
		}
		if latest == nil || ap.CreatedAt.After(latest.CreatedAt) {
			latest = ap
		}
	}

	if latest == nil {
		return nil, nil
	}

	return &dto.StatusMessageDTO{
		Status:  latest.Status,
		Message: latest.StatusMessage,
	}, nil
}
