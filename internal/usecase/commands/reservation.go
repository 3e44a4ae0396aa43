package commands

import (
	"context"
	"log/slog"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/uow"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	CourtID         uuid.UUID
	Date            time.Time // midnight in the booking timezone
	Slots           []int
	PaymentMethodID uuid.UUID
	CustomerName    string
	CustomerEmail   string
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	CheckoutURL string
}

type ReservationCommands struct {
	uow          uow.UnitOfWork
	courts       CourtRepository
	rules        PricingRuleRepository
	reservations ReservationRepository
	payments     PaymentRepository
	methods      PaymentMethodRepository
	gateway      PaymentGateway
	reads        queries.ReservationQueries
	clk          clock.Clock
	booking      config.BookingConfig
	loc          *time.Location
}

func NewReservationCommands(
	unitOfWork uow.UnitOfWork,
	courts CourtRepository,
	rules PricingRuleRepository,
	reservations ReservationRepository,
	payments PaymentRepository,
	methods PaymentMethodRepository,
	gateway PaymentGateway,
	reads queries.ReservationQueries,
	clk clock.Clock,
	booking config.BookingConfig,
) (*ReservationCommands, error) {
	loc, err := booking.Location()
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking timezone")
	}
	return &ReservationCommands{
		uow:          unitOfWork,
		courts:       courts,
		rules:        rules,
		reservations: reservations,
		payments:     payments,
		methods:      methods,
		gateway:      gateway,
		reads:        reads,
		clk:          clk,
		booking:      booking,
		loc:          loc,
	}, nil
}

// Create books the requested hours and opens the pending payment in one
// transaction. The slot uniqueness constraint is the arbiter of the
// concurrent-booking race: the loser's insert fails and the whole unit
// rolls back, so a reservation never exists without its payment row.
func (c *ReservationCommands) Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*CreateReservationResult, error) {
	slots, err := reservation.NewHourSet(in.Slots)
	if err != nil {
		return nil, err
	}
	if err := slots.ValidateWindow(c.booking.MinHour, c.booking.MaxHour); err != nil {
		return nil, err
	}

	var (
		res    *reservation.Reservation
		method *PaymentMethodSnapshot
	)
	err = c.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		courtEntity, err := c.courts.FindByID(ctx, tx, in.CourtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}

		method, err = c.methods.FindByID(ctx, tx, in.PaymentMethodID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentMethodNotFound
			}
			return err
		}
		if !method.IsActive {
			return ErrPaymentMethodInactive
		}

		ruleSet, err := c.rules.ListByCourt(ctx, tx, in.CourtID)
		if err != nil {
			return err
		}

		res, err = reservation.NewReservation(actor.UserID, courtEntity, in.Date, slots, pricing.NewResolver(ruleSet))
		return err
	})
	if err != nil {
		return nil, err
	}

	// The fee lookup is an outbound HTTP call; it runs before the write
	// transaction so a slow gateway never holds the slot row locks.
	fee, err := c.gateway.CalculateFee(ctx, method.Code, res.TotalAmount())
	if err != nil {
		// Fee lookup is advisory; a gateway hiccup must not block booking.
		slog.Warn("fee lookup failed, defaulting to zero",
			"method", method.Code, "error", err.Error())
		fee = 0
	}

	pay, err := payment.NewPayment(res.ID(), method.ID, res.TotalAmount(), fee, c.clk.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.reservations.Create(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotAlreadyBooked
			}
			return err
		}
		if err := c.payments.Create(ctx, tx, pay); err != nil {
			return err
		}
		if err := c.reservations.SetPaymentID(ctx, tx, res.ID(), pay.ID()); err != nil {
			return err
		}
		res.AttachPayment(pay.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The gateway transaction happens after commit: a gateway outage leaves
	// a bookable UNPAID reservation the customer can retry paying, not a
	// dangling charge without a reservation.
	checkoutURL := ""
	tx, err := c.gateway.CreateTransaction(ctx, GatewayTransaction{
		MerchantRef:   pay.Reference(),
		MethodCode:    method.Code,
		Amount:        pay.Amount() + pay.Fee(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
	})
	if err != nil {
		slog.Warn("gateway transaction creation failed",
			"merchant_ref", pay.Reference(), "error", err.Error())
	} else {
		checkoutURL = tx.CheckoutURL
	}

	view, err := c.reads.GetByIDSystem(ctx, res.ID())
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{Reservation: view, CheckoutURL: checkoutURL}, nil
}

// UpdateStatus applies an actor-initiated transition. Authorization and
// legality are decided by the domain; the compare-and-set write closes the
// race against a concurrent transition of the same row.
func (c *ReservationCommands) UpdateStatus(ctx context.Context, actor user.Actor, id uuid.UUID, to reservation.Status) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := c.reservations.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := reservation.AuthorizeTransition(actor, res.UserID(), res.Status(), to); err != nil {
			return err
		}
		if err := c.reservations.UpdateStatus(ctx, tx, id, res.Status(), to); err != nil {
			return err
		}
		if !to.HoldsSlots() {
			return c.reservations.ReleaseSlots(ctx, tx, id)
		}
		return nil
	})
}

// CheckIn is the staff-side QR scan. The stored status must be PAID and
// the wall clock must still be inside the reservation window; an expired
// window refuses check-in even though the row still reads PAID.
func (c *ReservationCommands) CheckIn(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := c.reservations.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := res.ValidateCheckIn(c.clk.Now(), c.loc); err != nil {
			return err
		}
		return c.reservations.UpdateStatus(ctx, tx, id, reservation.StatusPaid, reservation.StatusCheckedIn)
	})
}
