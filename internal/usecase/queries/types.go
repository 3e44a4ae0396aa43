package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/user"

	"github.com/google/uuid"
)

type SlotView struct {
	Hour      int
	Available bool
	Rate      int64
}

type AvailabilityView struct {
	CourtID uuid.UUID
	Date    time.Time
	Slots   []SlotView
}

type PaymentView struct {
	ID        uuid.UUID
	Amount    int64
	Fee       int64
	Status    string
	Reference string
	Notes     *string
}

type ReservationView struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CourtID     uuid.UUID
	CourtName   string
	Date        time.Time
	Slots       []int
	Status      string
	TotalAmount int64
	PaymentID   *uuid.UUID
	QRCodeID    *string
	Payment     *PaymentView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReservationListItem struct {
	ID          uuid.UUID
	CourtID     uuid.UUID
	CourtName   string
	Date        time.Time
	Slots       []int
	Status      string
	TotalAmount int64
	CreatedAt   time.Time
}

type CourtView struct {
	ID        uuid.UUID
	Name      string
	OpenHour  int
	CloseHour int
	IsActive  bool
	CreatedAt time.Time
}

type RuleView struct {
	ID        uuid.UUID
	CourtID   uuid.UUID
	StartDay  int
	EndDay    int
	StartHour int
	EndHour   int
	Rate      int64
}

type AvailabilityQueries interface {
	// CourtAvailability computes the 24-slot grid for a court on a
	// calendar day. Advisory for the slot picker; booking re-validates.
	CourtAvailability(ctx context.Context, courtID uuid.UUID, date time.Time) (*AvailabilityView, error)
}

type ReservationQueries interface {
	// GetByID enforces ownership: customers see their own reservations,
	// admins see all.
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem is for internal read-after-write lookups.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
}

type PricingQueries interface {
	ListByCourt(ctx context.Context, courtID uuid.UUID) ([]*RuleView, error)
}

type CourtQueries interface {
	// List returns every court, inactive ones included, so admins can
	// see and reactivate what customers no longer get offered.
	List(ctx context.Context) ([]*CourtView, error)
}
