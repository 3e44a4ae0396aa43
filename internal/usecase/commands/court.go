package commands

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"

	"github.com/google/uuid"
)

type CreateCourtInput struct {
	Name      string
	OpenHour  int
	CloseHour int
}

type CourtCommands struct {
	uow    uow.UnitOfWork
	courts CourtRepository
}

func NewCourtCommands(unitOfWork uow.UnitOfWork, courts CourtRepository) *CourtCommands {
	return &CourtCommands{uow: unitOfWork, courts: courts}
}

func (c *CourtCommands) Create(ctx context.Context, actor user.Actor, in CreateCourtInput) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, ErrAdminOnly
	}

	hours, err := court.NewOperatingHours(in.OpenHour, in.CloseHour)
	if err != nil {
		return uuid.Nil, err
	}
	entity, err := court.NewCourt(in.Name, hours)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.courts.Create(ctx, tx, entity)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (c *CourtCommands) Deactivate(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.courts.Deactivate(ctx, tx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}
		return nil
	})
}
