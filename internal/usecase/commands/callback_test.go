//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reconciler's contract is purely about state decisions, so the fakes
// below keep rows in memory and skip the SQL entirely.

type stubUoW struct{}

func (stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (stubUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

type paymentRow struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        int64
	status        payment.Status
	reference     string
	payload       []byte
}

type fakePaymentRepo struct {
	rows map[string]*paymentRow
}

func (f *fakePaymentRepo) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	f.rows[p.Reference()] = &paymentRow{
		id:            p.ID(),
		reservationID: p.ReservationID(),
		amount:        p.Amount(),
		status:        p.Status(),
		reference:     p.Reference(),
	}
	return nil
}

func (f *fakePaymentRepo) FindByReferenceForUpdate(ctx context.Context, dbtx db.DBTX, reference string) (*payment.Payment, error) {
	row, ok := f.rows[reference]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return payment.ReconstructPayment(
		row.id, row.reservationID, row.amount, 0,
		row.status, uuid.Nil, row.reference, nil,
		time.Time{}, time.Time{},
	), nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to payment.Status) error {
	for _, row := range f.rows {
		if row.id == id && row.status == from {
			row.status = to
			return nil
		}
	}
	return infra.WrapRepoErr("payment status changed concurrently", nil, infra.KindConflict)
}

func (f *fakePaymentRepo) StoreGatewayPayload(ctx context.Context, dbtx db.DBTX, id uuid.UUID, rawPayload []byte) error {
	for _, row := range f.rows {
		if row.id == id {
			row.payload = rawPayload
			return nil
		}
	}
	return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
}

type reservationRow struct {
	id            uuid.UUID
	userID        uuid.UUID
	status        reservation.Status
	qrCodeID      *string
	slotsReleased bool
}

type fakeReservationRepo struct {
	rows             map[uuid.UUID]*reservationRow
	conflictOnCreate bool
	onCreate         func()
}

func (f *fakeReservationRepo) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.conflictOnCreate {
		return infra.WrapRepoErr("slot already booked", nil, infra.KindConflict)
	}
	f.rows[res.ID()] = &reservationRow{id: res.ID(), userID: res.UserID(), status: res.Status()}
	return nil
}

func (f *fakeReservationRepo) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	slots, _ := reservation.NewHourSet([]int{10})
	return reservation.ReconstructReservation(
		row.id, row.userID, uuid.Nil,
		time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		slots, row.status, 50000, nil, row.qrCodeID,
		time.Time{}, time.Time{},
	), nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to reservation.Status) error {
	row, ok := f.rows[id]
	if !ok || row.status != from {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	row.status = to
	return nil
}

func (f *fakeReservationRepo) SetPaymentID(ctx context.Context, dbtx db.DBTX, id, paymentID uuid.UUID) error {
	return nil
}

func (f *fakeReservationRepo) SetQRCodeID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, qrCodeID string) error {
	row, ok := f.rows[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	row.qrCodeID = &qrCodeID
	return nil
}

func (f *fakeReservationRepo) ReleaseSlots(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error {
	row, ok := f.rows[reservationID]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	row.slotsReleased = true
	return nil
}

type callbackFixture struct {
	cmd          *commands.CallbackCommands
	payments     *fakePaymentRepo
	reservations *fakeReservationRepo
	resID        uuid.UUID
	ref          string
}

func newCallbackFixture(t *testing.T, payStatus payment.Status, resStatus reservation.Status) *callbackFixture {
	t.Helper()

	payments := &fakePaymentRepo{rows: map[string]*paymentRow{}}
	reservations := &fakeReservationRepo{rows: map[uuid.UUID]*reservationRow{}}

	resID := uuid.New()
	ref := "FTS-1756400000000000000-abcd1234"
	reservations.rows[resID] = &reservationRow{id: resID, status: resStatus}
	payments.rows[ref] = &paymentRow{
		id:            uuid.New(),
		reservationID: resID,
		amount:        50000,
		status:        payStatus,
		reference:     ref,
	}

	return &callbackFixture{
		cmd:          commands.NewCallbackCommands(stubUoW{}, payments, reservations),
		payments:     payments,
		reservations: reservations,
		resID:        resID,
		ref:          ref,
	}
}

func TestCallbackCommands_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("PAID settles the pending payment and confirms the reservation", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusPending, reservation.StatusUnpaid)

		result, err := fx.cmd.Apply(ctx, commands.CallbackInput{
			MerchantRef:   fx.ref,
			GatewayStatus: "PAID",
			RawPayload:    []byte(`{"status":"PAID"}`),
		})
		require.NoError(t, err)

		assert.True(t, result.Applied)
		assert.Equal(t, payment.StatusCompleted, fx.payments.rows[fx.ref].status)
		assert.Equal(t, reservation.StatusPaid, fx.reservations.rows[fx.resID].status)
		assert.NotNil(t, fx.reservations.rows[fx.resID].qrCodeID, "confirmation issues the QR code")
		assert.False(t, fx.reservations.rows[fx.resID].slotsReleased)
		assert.Equal(t, []byte(`{"status":"PAID"}`), fx.payments.rows[fx.ref].payload)
	})

	t.Run("redelivered PAID is a replay, not a second transition", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusPending, reservation.StatusUnpaid)

		first, err := fx.cmd.Apply(ctx, commands.CallbackInput{MerchantRef: fx.ref, GatewayStatus: "PAID"})
		require.NoError(t, err)
		require.True(t, first.Applied)

		second, err := fx.cmd.Apply(ctx, commands.CallbackInput{MerchantRef: fx.ref, GatewayStatus: "PAID"})
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.False(t, second.Applied)
		assert.Equal(t, payment.StatusCompleted, fx.payments.rows[fx.ref].status)
		assert.Equal(t, reservation.StatusPaid, fx.reservations.rows[fx.resID].status)
	})

	t.Run("FAILED expires the reservation and frees its slots", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusPending, reservation.StatusUnpaid)

		result, err := fx.cmd.Apply(ctx, commands.CallbackInput{MerchantRef: fx.ref, GatewayStatus: "FAILED"})
		require.NoError(t, err)

		assert.True(t, result.Applied)
		assert.Equal(t, payment.StatusFailed, fx.payments.rows[fx.ref].status)
		assert.Equal(t, reservation.StatusExpired, fx.reservations.rows[fx.resID].status)
		assert.True(t, fx.reservations.rows[fx.resID].slotsReleased)
	})

	t.Run("REFUND after settlement cancels the paid reservation", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusCompleted, reservation.StatusPaid)

		result, err := fx.cmd.Apply(ctx, commands.CallbackInput{MerchantRef: fx.ref, GatewayStatus: "REFUND"})
		require.NoError(t, err)

		assert.True(t, result.Applied)
		assert.Equal(t, payment.StatusRefunded, fx.payments.rows[fx.ref].status)
		assert.Equal(t, reservation.StatusCancelled, fx.reservations.rows[fx.resID].status)
		assert.True(t, fx.reservations.rows[fx.resID].slotsReleased)
	})

	t.Run("unknown gateway status stores the payload and flags manual review", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusPending, reservation.StatusUnpaid)

		result, err := fx.cmd.Apply(ctx, commands.CallbackInput{
			MerchantRef:   fx.ref,
			GatewayStatus: "ON_HOLD",
			RawPayload:    []byte(`{"status":"ON_HOLD"}`),
		})
		require.NoError(t, err)

		assert.True(t, result.ManualReview)
		assert.False(t, result.Applied)
		assert.Equal(t, payment.StatusPending, fx.payments.rows[fx.ref].status, "nothing transitions")
		assert.Equal(t, reservation.StatusUnpaid, fx.reservations.rows[fx.resID].status)
		assert.Equal(t, []byte(`{"status":"ON_HOLD"}`), fx.payments.rows[fx.ref].payload, "payload kept for audit")
	})

	t.Run("PAID after cancellation cannot revive the reservation", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusPending, reservation.StatusCancelled)

		result, err := fx.cmd.Apply(ctx, commands.CallbackInput{MerchantRef: fx.ref, GatewayStatus: "PAID"})
		require.NoError(t, err)

		assert.True(t, result.ManualReview)
		assert.Equal(t, payment.StatusPending, fx.payments.rows[fx.ref].status)
		assert.Equal(t, reservation.StatusCancelled, fx.reservations.rows[fx.resID].status)
	})

	t.Run("unknown merchant_ref is an error for the handler to map", func(t *testing.T) {
		fx := newCallbackFixture(t, payment.StatusPending, reservation.StatusUnpaid)

		_, err := fx.cmd.Apply(ctx, commands.CallbackInput{MerchantRef: "FTS-missing", GatewayStatus: "PAID"})
		require.ErrorIs(t, err, commands.ErrPaymentNotFound)
	})
}
