package appointment

import (
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func SetStatus(ap *models.Appointment, next Status, displayName string) error {
	if err := CanSetStatus(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	ap.StatusMessage = StatusMessage(next, displayName)
	return nil
}

// Cancel marks the appointment canceled and soft-deleted; the row stays.
func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.StatusMessage = CancelMessage()
	ap.IsDeleted = true
	return nil
}

// Reschedule moves the slot and sends the appointment back for approval.
// Line items are left as booked.
func Reschedule(ap *models.Appointment, slot Slot) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.SlotDate = slot.Date
	ap.SlotTime = slot.Time
	ap.Status = string(StatusPending)
	ap.StatusMessage = nil
	return nil
}
