package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type CourtRepository struct{}

func NewCourtRepository() *CourtRepository {
	return &CourtRepository{}
}

func (r *CourtRepository) Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO courts (id, name, open_hour, close_hour, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.Name(), c.Hours().Open, c.Hours().Close, c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create court", err)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*court.Court, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, name, open_hour, close_hour, is_active, created_at, updated_at
		FROM courts
		WHERE id = $1`,
		id,
	)

	var (
		courtID              uuid.UUID
		name                 string
		openHour, closeHour  int
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&courtID, &name, &openHour, &closeHour, &isActive, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}

	hours, err := court.NewOperatingHours(openHour, closeHour)
	if err != nil {
		return nil, infra.WrapRepoErr("stored operating hours are invalid", err)
	}

	return court.ReconstructCourt(courtID, name, hours, isActive, createdAt, updatedAt), nil
}

func (r *CourtRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE courts SET is_active = false, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}
