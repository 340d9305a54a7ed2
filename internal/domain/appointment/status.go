package appointment

import (
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCanceled  Status = "Canceled"
	StatusCompleted Status = "Completed"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// Occupying statuses hold their slot unless the appointment is soft-deleted.
func (s Status) Occupying() bool {
	return s == StatusPending || s == StatusApproved || s == StatusCompleted
}

// OccupyingStatuses lists the statuses that hold a slot, for storage queries.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusCompleted)}
}

// IsActive is the allocator's notion of a slot holder.
func IsActive(status string, isDeleted bool) bool {
	return !isDeleted && Status(status).Occupying()
}

// ===============================
// Transitions
// ===============================

var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}

// CanSetStatus guards operator status updates.
func CanSetStatus(current, next Status) error {
	for _, allowed := range statusTransitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusinessf(httperr.CodeInvalidState, string(current)+" -> "+string(next))
}

// CanCancel: a customer may back out of anything not yet finished or already canceled.
func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	}
	return httperr.ErrBusinessf(httperr.CodeInvalidState, "cannot cancel "+string(current))
}

func CanReschedule(current Status) error {
	switch current {
	case StatusPending, StatusRejected:
		return nil
	}
	return httperr.ErrBusinessf(httperr.CodeInvalidState, "cannot reschedule "+string(current))
}

// DeletableStatuses is the per-role set a hard delete may start from.
func DeletableStatuses(role identity.Role) []Status {
	if role == identity.RoleOperator {
		return []Status{StatusRejected, StatusCompleted}
	}
	return []Status{StatusCanceled, StatusRejected}
}

func CanDelete(role identity.Role, current Status) error {
	for _, s := range DeletableStatuses(role) {
		if s == current {
			return nil
		}
	}
	return httperr.ErrBusinessf(httperr.CodeInvalidState, "cannot delete "+string(current))
}

func InitialStatus() Status {
	return StatusPending
}
