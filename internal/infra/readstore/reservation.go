package readstore

import (
	"context"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	uow uow.UnitOfWork
}

func NewReservationReadStore(unitOfWork uow.UnitOfWork) *ReservationReadStore {
	return &ReservationReadStore{uow: unitOfWork}
}

// GetByID applies the ownership rule at the read boundary: a customer may
// only see their own reservation, an admin sees any.
func (s *ReservationReadStore) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := s.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && view.UserID != actor.UserID {
		return nil, queries.ErrForbidden
	}
	return view, nil
}

func (s *ReservationReadStore) GetByIDSystem(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view *queries.ReservationView

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRow(ctx, `
			SELECT r.id, r.user_id, r.court_id, c.name, r.slot_date, r.slots,
			       r.status, r.total_amount, r.payment_id, r.qr_code_id,
			       r.created_at, r.updated_at,
			       p.id, p.amount, p.fee, p.status, p.reference, p.notes
			FROM reservations r
			JOIN courts c ON c.id = r.court_id
			LEFT JOIN payments p ON p.id = r.payment_id
			WHERE r.id = $1`,
			id,
		)

		var (
			v        queries.ReservationView
			slotArr  []int32
			payID    *uuid.UUID
			payAmt   *int64
			payFee   *int64
			payStat  *string
			payRef   *string
			payNotes *string
		)
		err := row.Scan(
			&v.ID, &v.UserID, &v.CourtID, &v.CourtName, &v.Date, &slotArr,
			&v.Status, &v.TotalAmount, &v.PaymentID, &v.QRCodeID,
			&v.CreatedAt, &v.UpdatedAt,
			&payID, &payAmt, &payFee, &payStat, &payRef, &payNotes,
		)
		if err != nil {
			if infra.IsNoRows(err) {
				return queries.ErrReservationNotFound
			}
			return infra.WrapRepoErr("failed to get reservation", err)
		}

		v.Slots = toHours(slotArr)
		if payID != nil {
			v.Payment = &queries.PaymentView{
				ID:        *payID,
				Amount:    *payAmt,
				Fee:       *payFee,
				Status:    *payStat,
				Reference: *payRef,
				Notes:     payNotes,
			}
		}
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	var items []*queries.ReservationListItem

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		rows, err := tx.Query(ctx, `
			SELECT r.id, r.court_id, c.name, r.slot_date, r.slots, r.status, r.total_amount, r.created_at
			FROM reservations r
			JOIN courts c ON c.id = r.court_id
			WHERE r.user_id = $1
			ORDER BY r.created_at DESC`,
			userID,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to list reservations", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				item    queries.ReservationListItem
				slotArr []int32
				date    time.Time
			)
			if err := rows.Scan(&item.ID, &item.CourtID, &item.CourtName, &date, &slotArr, &item.Status, &item.TotalAmount, &item.CreatedAt); err != nil {
				return infra.WrapRepoErr("failed to scan reservation", err)
			}
			item.Date = date
			item.Slots = toHours(slotArr)
			items = append(items, &item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func toHours(slotArr []int32) []int {
	hours := make([]int, len(slotArr))
	for i, h := range slotArr {
		hours[i] = int(h)
	}
	return hours
}
