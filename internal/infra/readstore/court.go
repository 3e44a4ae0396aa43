package readstore

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtReadStore struct {
	uow uow.UnitOfWork
}

func NewCourtReadStore(unitOfWork uow.UnitOfWork) *CourtReadStore {
	return &CourtReadStore{uow: unitOfWork}
}

func (s *CourtReadStore) List(ctx context.Context) ([]*queries.CourtView, error) {
	var views []*queries.CourtView

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		rows, err := tx.Query(ctx, `
			SELECT id, name, open_hour, close_hour, is_active, created_at
			FROM courts
			ORDER BY created_at, id`,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to list courts", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id                  uuid.UUID
				name                string
				openHour, closeHour int32
				isActive            bool
				createdAt           time.Time
			)
			if err := rows.Scan(&id, &name, &openHour, &closeHour, &isActive, &createdAt); err != nil {
				return infra.WrapRepoErr("failed to scan court", err)
			}
			views = append(views, &queries.CourtView{
				ID:        id,
				Name:      name,
				OpenHour:  int(openHour),
				CloseHour: int(closeHour),
				IsActive:  isActive,
				CreatedAt: createdAt,
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
