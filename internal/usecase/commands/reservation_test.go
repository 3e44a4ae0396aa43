//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourtRepo struct {
	courts map[uuid.UUID]*court.Court
}

func (f *fakeCourtRepo) Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error {
	f.courts[c.ID()] = c
	return nil
}

func (f *fakeCourtRepo) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*court.Court, error) {
	c, ok := f.courts[id]
	if !ok {
		return nil, infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (f *fakeCourtRepo) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	if _, ok := f.courts[id]; !ok {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

type fakeRuleRepo struct {
	rules []*pricing.Rule
}

func (f *fakeRuleRepo) Create(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error {
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeRuleRepo) ListByCourt(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID) ([]*pricing.Rule, error) {
	out := make([]*pricing.Rule, 0, len(f.rules))
	for _, r := range f.rules {
		if r.CourtID() == courtID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRuleRepo) Delete(ctx context.Context, dbtx db.DBTX, courtID, ruleID uuid.UUID) error {
	return nil
}

type fakeMethodRepo struct {
	methods map[uuid.UUID]*commands.PaymentMethodSnapshot
}

func (f *fakeMethodRepo) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.PaymentMethodSnapshot, error) {
	m, ok := f.methods[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment method not found", nil, infra.KindNotFound)
	}
	return m, nil
}

type fakeGateway struct {
	fee       int64
	feeErr    error
	feeCalls  int
	txErr     error
	createdTx *commands.GatewayTransaction
}

func (f *fakeGateway) CalculateFee(ctx context.Context, methodCode string, amount int64) (int64, error) {
	f.feeCalls++
	if f.feeErr != nil {
		return 0, f.feeErr
	}
	return f.fee, nil
}

func (f *fakeGateway) CreateTransaction(ctx context.Context, in commands.GatewayTransaction) (*commands.GatewayTransactionResult, error) {
	if f.txErr != nil {
		return nil, f.txErr
	}
	f.createdTx = &in
	return &commands.GatewayTransactionResult{
		Reference:   "T0001-REF",
		CheckoutURL: "https://gateway.example/checkout/" + in.MerchantRef,
		Status:      "UNPAID",
	}, nil
}

type fakeReservationReads struct{}

func (fakeReservationReads) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	return &queries.ReservationView{ID: id}, nil
}

func (fakeReservationReads) GetByIDSystem(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return &queries.ReservationView{ID: id}, nil
}

func (fakeReservationReads) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

type bookingFixture struct {
	cmd          *commands.ReservationCommands
	courts       *fakeCourtRepo
	reservations *fakeReservationRepo
	payments     *fakePaymentRepo
	gateway      *fakeGateway
	clk          *clock.MockClock

	courtID  uuid.UUID
	methodID uuid.UUID
	actor    user.Actor
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	hours, err := court.NewOperatingHours(8, 22)
	require.NoError(t, err)
	courtEntity, err := court.NewCourt("Court A", hours)
	require.NoError(t, err)

	rule, err := pricing.NewRule(courtEntity.ID(), time.Sunday, time.Saturday, 8, 22, 50000)
	require.NoError(t, err)

	methodID := uuid.New()
	fx := &bookingFixture{
		courts:       &fakeCourtRepo{courts: map[uuid.UUID]*court.Court{courtEntity.ID(): courtEntity}},
		reservations: &fakeReservationRepo{rows: map[uuid.UUID]*reservationRow{}},
		payments:     &fakePaymentRepo{rows: map[string]*paymentRow{}},
		gateway:      &fakeGateway{fee: 2500},
		clk:          clock.NewMockClock(time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)),
		courtID:      courtEntity.ID(),
		methodID:     methodID,
		actor:        user.Actor{UserID: uuid.New(), Role: user.RoleCustomer},
	}

	fx.cmd, err = commands.NewReservationCommands(
		stubUoW{},
		fx.courts,
		&fakeRuleRepo{rules: []*pricing.Rule{rule}},
		fx.reservations,
		fx.payments,
		&fakeMethodRepo{methods: map[uuid.UUID]*commands.PaymentMethodSnapshot{
			methodID: {ID: methodID, Code: "QRIS", Name: "QRIS", IsActive: true},
		}},
		fx.gateway,
		fakeReservationReads{},
		fx.clk,
		config.BookingConfig{MinHour: 8, MaxHour: 21, TimeZone: "UTC"},
	)
	require.NoError(t, err)
	return fx
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	t.Run("books slots and opens the pending payment atomically", func(t *testing.T) {
		fx := newBookingFixture(t)

		result, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         fx.courtID,
			Date:            date,
			Slots:           []int{10, 11},
			PaymentMethodID: fx.methodID,
			CustomerName:    "Budi",
			CustomerEmail:   "budi@example.com",
		})
		require.NoError(t, err)

		require.Len(t, fx.payments.rows, 1)
		for _, row := range fx.payments.rows {
			assert.Equal(t, int64(100000), row.amount, "two slots at 50000 each")
		}
		assert.Contains(t, result.CheckoutURL, "https://gateway.example/checkout/")
		require.NotNil(t, fx.gateway.createdTx)
		assert.Equal(t, int64(102500), fx.gateway.createdTx.Amount, "charge includes the gateway fee")
	})

	t.Run("slot outside the booking window is rejected before any write", func(t *testing.T) {
		fx := newBookingFixture(t)

		_, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         fx.courtID,
			Date:            date,
			Slots:           []int{7},
			PaymentMethodID: fx.methodID,
		})
		require.ErrorIs(t, err, reservation.ErrOutsideHours)
		assert.Empty(t, fx.reservations.rows)
	})

	t.Run("losing the slot race surfaces as a conflict", func(t *testing.T) {
		fx := newBookingFixture(t)
		fx.reservations.conflictOnCreate = true

		_, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         fx.courtID,
			Date:            date,
			Slots:           []int{10},
			PaymentMethodID: fx.methodID,
		})
		require.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Empty(t, fx.payments.rows, "no payment without the reservation")
	})

	t.Run("fee lookup completes before the slot insert", func(t *testing.T) {
		fx := newBookingFixture(t)
		feeCallsAtInsert := -1
		fx.reservations.onCreate = func() {
			feeCallsAtInsert = fx.gateway.feeCalls
		}

		_, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         fx.courtID,
			Date:            date,
			Slots:           []int{10},
			PaymentMethodID: fx.methodID,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, feeCallsAtInsert,
			"the outbound fee call must not run inside the transaction that locks the slots")
	})

	t.Run("gateway outage on fee lookup does not block the booking", func(t *testing.T) {
		fx := newBookingFixture(t)
		fx.gateway.feeErr = context.DeadlineExceeded

		_, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         fx.courtID,
			Date:            date,
			Slots:           []int{10},
			PaymentMethodID: fx.methodID,
		})
		require.NoError(t, err)
	})

	t.Run("gateway outage on transaction creation leaves a retryable booking", func(t *testing.T) {
		fx := newBookingFixture(t)
		fx.gateway.txErr = context.DeadlineExceeded

		result, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         fx.courtID,
			Date:            date,
			Slots:           []int{10},
			PaymentMethodID: fx.methodID,
		})
		require.NoError(t, err)
		assert.Empty(t, result.CheckoutURL)
		require.Len(t, fx.reservations.rows, 1)
	})

	t.Run("unknown court", func(t *testing.T) {
		fx := newBookingFixture(t)

		_, err := fx.cmd.Create(ctx, fx.actor, commands.CreateReservationInput{
			CourtID:         uuid.New(),
			Date:            date,
			Slots:           []int{10},
			PaymentMethodID: fx.methodID,
		})
		require.ErrorIs(t, err, commands.ErrCourtNotFound)
	})
}

func TestReservationCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("customer cancelling own unpaid reservation frees its slots", func(t *testing.T) {
		fx := newBookingFixture(t)
		resID := uuid.New()
		fx.reservations.rows[resID] = &reservationRow{id: resID, status: reservation.StatusUnpaid, userID: fx.actor.UserID}

		err := fx.cmd.UpdateStatus(ctx, fx.actor, resID, reservation.StatusCancelled)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCancelled, fx.reservations.rows[resID].status)
		assert.True(t, fx.reservations.rows[resID].slotsReleased)
	})

	t.Run("customer cannot cancel a paid reservation", func(t *testing.T) {
		fx := newBookingFixture(t)
		resID := uuid.New()
		fx.reservations.rows[resID] = &reservationRow{id: resID, status: reservation.StatusPaid, userID: fx.actor.UserID}

		err := fx.cmd.UpdateStatus(ctx, fx.actor, resID, reservation.StatusCancelled)
		require.ErrorIs(t, err, reservation.ErrCustomerForbidden)
		assert.Equal(t, reservation.StatusPaid, fx.reservations.rows[resID].status)
	})

	t.Run("admin moves paid to checked-in", func(t *testing.T) {
		fx := newBookingFixture(t)
		admin := user.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
		resID := uuid.New()
		fx.reservations.rows[resID] = &reservationRow{id: resID, status: reservation.StatusPaid, userID: fx.actor.UserID}

		err := fx.cmd.UpdateStatus(ctx, admin, resID, reservation.StatusCheckedIn)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedIn, fx.reservations.rows[resID].status)
		assert.False(t, fx.reservations.rows[resID].slotsReleased, "checked-in still holds the hours")
	})
}

func TestReservationCommands_CheckIn(t *testing.T) {
	ctx := context.Background()
	admin := user.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

	// Fake rows reconstruct with slots {10} on 2026-09-02, so the check-in
	// window closes at 11:00.
	newPaid := func(fx *bookingFixture) uuid.UUID {
		resID := uuid.New()
		fx.reservations.rows[resID] = &reservationRow{id: resID, status: reservation.StatusPaid}
		return resID
	}

	t.Run("inside the window", func(t *testing.T) {
		fx := newBookingFixture(t)
		resID := newPaid(fx)
		fx.clk.Set(time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC))

		require.NoError(t, fx.cmd.CheckIn(ctx, admin, resID))
		assert.Equal(t, reservation.StatusCheckedIn, fx.reservations.rows[resID].status)
	})

	t.Run("after the last hour has ended", func(t *testing.T) {
		fx := newBookingFixture(t)
		resID := newPaid(fx)
		fx.clk.Set(time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC))

		err := fx.cmd.CheckIn(ctx, admin, resID)
		require.ErrorIs(t, err, reservation.ErrCheckInWindowClosed)
		assert.Equal(t, reservation.StatusPaid, fx.reservations.rows[resID].status)
	})

	t.Run("unpaid reservation cannot check in", func(t *testing.T) {
		fx := newBookingFixture(t)
		resID := uuid.New()
		fx.reservations.rows[resID] = &reservationRow{id: resID, status: reservation.StatusUnpaid}
		fx.clk.Set(time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC))

		err := fx.cmd.CheckIn(ctx, admin, resID)
		require.ErrorIs(t, err, reservation.ErrCheckInNotPaid)
	})

	t.Run("customers cannot drive check-in", func(t *testing.T) {
		fx := newBookingFixture(t)
		resID := newPaid(fx)

		err := fx.cmd.CheckIn(ctx, fx.actor, resID)
		require.ErrorIs(t, err, commands.ErrAdminOnly)
	})
}
