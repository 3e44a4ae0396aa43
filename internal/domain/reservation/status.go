package reservation

import (
	"errors"

	"courtbook/internal/domain/user"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUnpaid    Status = "UNPAID"
	StatusPaid      Status = "PAID"
	StatusCheckedIn Status = "CHECKED_IN"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotOwner          = errors.New("reservation belongs to another user")
	ErrCustomerForbidden = errors.New("customers may only cancel unpaid reservations")
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusCheckedIn, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// Terminal statuses admit no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckedIn, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// HoldsSlots reports whether a reservation in this status still occupies
// its hours. CANCELLED/EXPIRED free the slots for rebooking.
func (s Status) HoldsSlots() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusCheckedIn:
		return true
	default:
		return false
	}
}

var legalTransitions = map[Status][]Status{
	StatusUnpaid: {StatusPaid, StatusCancelled, StatusExpired},
	StatusPaid:   {StatusCheckedIn, StatusCancelled},
}

// CanTransition is the single transition validator. Every writer — admin
// edits, customer cancels, check-in, and the gateway reconciler — funnels
// through it so illegal transitions are rejected regardless of origin.
func CanTransition(from, to Status) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AuthorizeTransition layers actor rules on top of CanTransition:
// admins may perform any legal transition; customers may only cancel
// their own UNPAID reservation. Ownership and role failures are
// authorization errors, distinct from state errors.
func AuthorizeTransition(actor user.Actor, ownerID uuid.UUID, from, to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !actor.IsAdmin() {
		if actor.UserID != ownerID {
			return ErrNotOwner
		}
		if from != StatusUnpaid || to != StatusCancelled {
			return ErrCustomerForbidden
		}
	}
	if !CanTransition(from, to) {
		return ErrIllegalTransition
	}
	return nil
}
