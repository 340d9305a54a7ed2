package identity

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type Role string

const (
	RoleCustomer Role = models.RoleCustomer
	RoleOperator Role = models.RoleOperator
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleOperator:
		return Role(s), true
	}
	return "", false
}

// Actor is the caller identity handed to every core operation by the auth layer.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func Customer(id uuid.UUID) Actor {
	return Actor{ID: id, Role: RoleCustomer}
}

func Operator(id uuid.UUID) Actor {
	return Actor{ID: id, Role: RoleOperator}
}

func (a Actor) IsOperator() bool {
	return a.Role == RoleOperator
}

// Owns reports whether the actor is the given owner.
func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.ID == ownerID
}
