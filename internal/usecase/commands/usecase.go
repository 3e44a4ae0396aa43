package commands

import (
	"context"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"

	"github.com/google/uuid"
)

// Handler-facing interfaces. The concrete command types in this package
// implement them; handler tests mock them.

type ReservationUseCase interface {
	Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*CreateReservationResult, error)
	UpdateStatus(ctx context.Context, actor user.Actor, id uuid.UUID, to reservation.Status) error
	CheckIn(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type CallbackUseCase interface {
	Apply(ctx context.Context, in CallbackInput) (*CallbackResult, error)
}

type CourtUseCase interface {
	Create(ctx context.Context, actor user.Actor, in CreateCourtInput) (uuid.UUID, error)
	Deactivate(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type PricingUseCase interface {
	CreateRule(ctx context.Context, actor user.Actor, in CreateRuleInput) (uuid.UUID, error)
	DeleteRule(ctx context.Context, actor user.Actor, courtID, ruleID uuid.UUID) error
}
