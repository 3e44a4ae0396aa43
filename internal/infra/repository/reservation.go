package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// Create persists the reservation row and one slot row per booked hour.
// The slot batch insert is where a concurrent overlapping booking loses:
// the unique index rejects it with a conflict-kind error.
func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	slots := res.Slots().Hours()
	slotArr := make([]int32, len(slots))
	for i, h := range slots {
		slotArr[i] = int32(h)
	}

	_, err := dbtx.Exec(ctx, `
		INSERT INTO reservations (id, user_id, court_id, slot_date, slots, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID(), res.UserID(), res.CourtID(), res.Date(), slotArr, res.Status().String(), res.TotalAmount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	_, err = dbtx.Exec(ctx, `
		INSERT INTO reservation_slots (reservation_id, court_id, slot_date, hour)
		SELECT $1, $2, $3, unnest($4::int[])`,
		res.ID(), res.CourtID(), res.Date(), slotArr,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to claim reservation slots", err)
	}

	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, user_id, court_id, slot_date, slots, status, total_amount, payment_id, qr_code_id, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`,
		id,
	)
	return scanReservation(row)
}

// UpdateStatus is a compare-and-set: it only succeeds when the stored
// status still equals from, so duplicate callback deliveries and racing
// admin edits cannot double-apply a transition.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to reservation.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, from.String(), to.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) SetPaymentID(ctx context.Context, dbtx db.DBTX, id, paymentID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations SET payment_id = $2, updated_at = now() WHERE id = $1`,
		id, paymentID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to attach payment to reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) SetQRCodeID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, qrCodeID string) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations SET qr_code_id = $2, updated_at = now() WHERE id = $1`,
		id, qrCodeID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set reservation qr code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReleaseSlots frees the booked hours when a reservation stops holding
// them (CANCELLED/EXPIRED). Runs in the same transaction as the status
// update so availability and the overlap guard stay consistent.
func (r *ReservationRepository) ReleaseSlots(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		DELETE FROM reservation_slots WHERE reservation_id = $1`,
		reservationID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release reservation slots", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, userID, courtID  uuid.UUID
		slotDate             time.Time
		slotArr              []int32
		status               string
		totalAmount          int64
		paymentID            *uuid.UUID
		qrCodeID             *string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &courtID, &slotDate, &slotArr, &status, &totalAmount, &paymentID, &qrCodeID, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	hours := make([]int, len(slotArr))
	for i, h := range slotArr {
		hours[i] = int(h)
	}
	slots, err := reservation.NewHourSet(hours)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slots are invalid", err)
	}

	return reservation.ReconstructReservation(
		id, userID, courtID, slotDate, slots,
		reservation.Status(status), totalAmount, paymentID, qrCodeID,
		createdAt, updatedAt,
	), nil
}
