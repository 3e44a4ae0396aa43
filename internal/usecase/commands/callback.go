package commands

import (
	"context"
	"log/slog"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"

	"github.com/google/uuid"
)

type CallbackInput struct {
	MerchantRef   string
	GatewayStatus string
	RawPayload    []byte
}

type CallbackResult struct {
	// Applied means the payment and reservation moved to new statuses.
	Applied bool
	// Replayed means the callback matched an already-reconciled state;
	// gateways redeliver and a replay is a success, not an error.
	Replayed bool
	// ManualReview means the payload was stored but nothing transitioned:
	// an unknown gateway status or a transition the state machine forbids.
	ManualReview bool

	PaymentStatus     payment.Status
	ReservationStatus reservation.Status
}

type CallbackCommands struct {
	uow          uow.UnitOfWork
	payments     PaymentRepository
	reservations ReservationRepository
}

func NewCallbackCommands(
	unitOfWork uow.UnitOfWork,
	payments PaymentRepository,
	reservations ReservationRepository,
) *CallbackCommands {
	return &CallbackCommands{
		uow:          unitOfWork,
		payments:     payments,
		reservations: reservations,
	}
}

// Apply reconciles one gateway callback. The payment row is locked for the
// duration so concurrent redeliveries serialize; the raw payload is always
// stored for audit before any state decision is made.
func (c *CallbackCommands) Apply(ctx context.Context, in CallbackInput) (*CallbackResult, error) {
	result := &CallbackResult{}

	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		pay, err := c.payments.FindByReferenceForUpdate(ctx, tx, in.MerchantRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		if err := c.payments.StoreGatewayPayload(ctx, tx, pay.ID(), in.RawPayload); err != nil {
			return err
		}

		targetPay, targetRes, ok := payment.MapGatewayStatus(in.GatewayStatus)
		if !ok {
			slog.Warn("unknown gateway status, flagged for manual review",
				"merchant_ref", in.MerchantRef, "gateway_status", in.GatewayStatus)
			result.ManualReview = true
			result.PaymentStatus = pay.Status()
			return nil
		}

		res, err := c.reservations.FindByIDForUpdate(ctx, tx, pay.ReservationID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if pay.Status() == targetPay {
			result.Replayed = true
			result.PaymentStatus = pay.Status()
			result.ReservationStatus = res.Status()
			return nil
		}

		if !payment.CanTransition(pay.Status(), targetPay) || !reservation.CanTransition(res.Status(), targetRes) {
			// A PAID callback after cancellation, or conflicting finals.
			// The payload is already stored; leave the rows alone and let a
			// human reconcile the money.
			slog.Warn("callback conflicts with current state, flagged for manual review",
				"merchant_ref", in.MerchantRef,
				"gateway_status", in.GatewayStatus,
				"payment_status", pay.Status().String(),
				"reservation_status", res.Status().String())
			result.ManualReview = true
			result.PaymentStatus = pay.Status()
			result.ReservationStatus = res.Status()
			return nil
		}

		if err := c.payments.UpdateStatus(ctx, tx, pay.ID(), pay.Status(), targetPay); err != nil {
			return err
		}
		if err := c.reservations.UpdateStatus(ctx, tx, res.ID(), res.Status(), targetRes); err != nil {
			return err
		}

		if targetRes == reservation.StatusPaid {
			if err := c.reservations.SetQRCodeID(ctx, tx, res.ID(), uuid.NewString()); err != nil {
				return err
			}
		}
		if !targetRes.HoldsSlots() {
			if err := c.reservations.ReleaseSlots(ctx, tx, res.ID()); err != nil {
				return err
			}
		}

		result.Applied = true
		result.PaymentStatus = targetPay
		result.ReservationStatus = targetRes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
