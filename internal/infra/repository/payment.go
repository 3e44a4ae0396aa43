package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO payments (id, reservation_id, amount, fee, status, method_id, reference, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID(), p.ReservationID(), p.Amount(), p.Fee(), p.Status().String(), p.MethodID(), p.Reference(), p.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// FindByReferenceForUpdate locks the payment row for the duration of the
// reconciliation transaction, serializing duplicate callback deliveries
// for the same merchant_ref.
func (r *PaymentRepository) FindByReferenceForUpdate(ctx context.Context, dbtx db.DBTX, reference string) (*payment.Payment, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, reservation_id, amount, fee, status, method_id, reference, notes, created_at, updated_at
		FROM payments
		WHERE reference = $1
		FOR UPDATE`,
		reference,
	)
	return scanPayment(row)
}

func (r *PaymentRepository) FindByReservationID(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (*payment.Payment, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, reservation_id, amount, fee, status, method_id, reference, notes, created_at, updated_at
		FROM payments
		WHERE reservation_id = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		reservationID,
	)
	return scanPayment(row)
}

// UpdateStatus is a compare-and-set on payment status.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to payment.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE payments SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, from.String(), to.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// StoreGatewayPayload keeps the raw callback body verbatim for audit and
// invoice use, including unmapped statuses.
func (r *PaymentRepository) StoreGatewayPayload(ctx context.Context, dbtx db.DBTX, id uuid.UUID, rawPayload []byte) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE payments SET gateway_payload = $2, updated_at = now() WHERE id = $1`,
		id, rawPayload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to store gateway payload", err)
	}
	return nil
}

func scanPayment(row rowScanner) (*payment.Payment, error) {
	var (
		id, reservationID    uuid.UUID
		amount, fee          int64
		status               string
		methodID             uuid.UUID
		reference            string
		notes                *string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &reservationID, &amount, &fee, &status, &methodID, &reference, &notes, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan payment", err)
	}

	return payment.ReconstructPayment(
		id, reservationID, amount, fee, payment.Status(status), methodID, reference, notes, createdAt, updatedAt,
	), nil
}
