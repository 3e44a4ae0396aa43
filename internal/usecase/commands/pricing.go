package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"

	"github.com/google/uuid"
)

type CreateRuleInput struct {
	CourtID   uuid.UUID
	StartDay  int
	EndDay    int
	StartHour int
	EndHour   int
	Rate      int64
}

type PricingCommands struct {
	uow    uow.UnitOfWork
	courts CourtRepository
	rules  PricingRuleRepository
}

func NewPricingCommands(unitOfWork uow.UnitOfWork, courts CourtRepository, rules PricingRuleRepository) *PricingCommands {
	return &PricingCommands{uow: unitOfWork, courts: courts, rules: rules}
}

// CreateRule rejects any rule that shares a (day, hour) cell with an
// existing rule for the court, keeping first-match resolution unambiguous.
// The check runs inside the write transaction so two admins cannot race
// overlapping rules past each other.
func (c *PricingCommands) CreateRule(ctx context.Context, actor user.Actor, in CreateRuleInput) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, ErrAdminOnly
	}

	rule, err := pricing.NewRule(
		in.CourtID,
		time.Weekday(in.StartDay), time.Weekday(in.EndDay),
		in.StartHour, in.EndHour,
		in.Rate,
	)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := c.courts.FindByID(ctx, tx, in.CourtID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}
		existing, err := c.rules.ListByCourt(ctx, tx, in.CourtID)
		if err != nil {
			return err
		}
		if err := pricing.ValidateNoOverlap(rule, existing); err != nil {
			return err
		}
		return c.rules.Create(ctx, tx, rule)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rule.ID(), nil
}

func (c *PricingCommands) DeleteRule(ctx context.Context, actor user.Actor, courtID, ruleID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.rules.Delete(ctx, tx, courtID, ruleID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRuleNotFound
			}
			return err
		}
		return nil
	})
}
