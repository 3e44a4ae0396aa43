package readstore

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	uow uow.UnitOfWork
}

func NewAvailabilityReadStore(unitOfWork uow.UnitOfWork) *AvailabilityReadStore {
	return &AvailabilityReadStore{uow: unitOfWork}
}

// CourtAvailability reads the rule set and the held hours in one read-only
// transaction so the grid reflects a single consistent snapshot. Held
// hours come from reservation_slots, which only contains rows for
// reservations still holding their slots.
func (s *AvailabilityReadStore) CourtAvailability(ctx context.Context, courtID uuid.UUID, date time.Time) (*queries.AvailabilityView, error) {
	var view *queries.AvailabilityView

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM courts WHERE id = $1)`, courtID,
		).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check court", err)
		}
		if !exists {
			return queries.ErrCourtNotFound
		}

		rules, err := listRules(ctx, tx, courtID)
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT hour FROM reservation_slots
			WHERE court_id = $1 AND slot_date = $2`,
			courtID, date,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to list booked hours", err)
		}
		defer rows.Close()

		var booked []int
		for rows.Next() {
			var hour int32
			if err := rows.Scan(&hour); err != nil {
				return infra.WrapRepoErr("failed to scan booked hour", err)
			}
			booked = append(booked, int(hour))
		}
		if err := rows.Err(); err != nil {
			return infra.WrapRepoErr("failed to read booked hours", err)
		}

		view = queries.BuildAvailability(courtID, date, rules, booked)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func listRules(ctx context.Context, tx db.DBTX, courtID uuid.UUID) ([]*pricing.Rule, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, court_id, start_day, end_day, start_hour, end_hour, rate, created_at
		FROM pricing_rules
		WHERE court_id = $1
		ORDER BY created_at, id`,
		courtID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		var (
			id, cID            uuid.UUID
			startDay, endDay   int32
			startHour, endHour int32
			rate               int64
			createdAt          time.Time
		)
		if err := rows.Scan(&id, &cID, &startDay, &endDay, &startHour, &endHour, &rate, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		rules = append(rules, pricing.ReconstructRule(
			id, cID,
			time.Weekday(startDay), time.Weekday(endDay),
			int(startHour), int(endHour),
			rate, createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rules", err)
	}
	return rules, nil
}
