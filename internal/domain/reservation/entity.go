package reservation

import (
	"errors"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrOutsideOperatingHours = errors.New("slot outside court operating hours")
	ErrCheckInNotPaid        = errors.New("only paid reservations can check in")
	ErrCheckInWindowClosed   = errors.New("check-in window has closed")
)

// NoRateError names the first hour the pricing rules fail to cover, so
// booking rejections can cite it.
type NoRateError struct {
	Hour int
}

func (e *NoRateError) Error() string {
	return "no pricing rule for hour"
}

type Reservation struct {
	id          uuid.UUID
	userID      uuid.UUID
	courtID     uuid.UUID
	date        time.Time // calendar day; time-of-day is not significant
	slots       HourSet
	status      Status
	totalAmount int64
	paymentID   *uuid.UUID
	qrCodeID    *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation prices every requested hour against the rule snapshot and
// freezes the sum into totalAmount. Any unpriced hour aborts the booking.
func NewReservation(
	userID uuid.UUID,
	courtEntity *court.Court,
	date time.Time,
	slots HourSet,
	resolver *pricing.Resolver,
) (*Reservation, error) {
	if !courtEntity.IsActive() {
		return nil, court.ErrInactive
	}
	for _, h := range slots.Hours() {
		if !courtEntity.Hours().Contains(h) {
			return nil, ErrOutsideOperatingHours
		}
	}

	day := date.Weekday()
	var total int64
	for _, h := range slots.Hours() {
		rate, err := resolver.Rate(day, h)
		if err != nil {
			return nil, &NoRateError{Hour: h}
		}
		total += rate
	}

	return &Reservation{
		id:          uuid.New(),
		userID:      userID,
		courtID:     courtEntity.ID(),
		date:        date,
		slots:       slots,
		status:      StatusUnpaid,
		totalAmount: total,
	}, nil
}

func ReconstructReservation(
	id, userID, courtID uuid.UUID,
	date time.Time,
	slots HourSet,
	status Status,
	totalAmount int64,
	paymentID *uuid.UUID,
	qrCodeID *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		userID:      userID,
		courtID:     courtID,
		date:        date,
		slots:       slots,
		status:      status,
		totalAmount: totalAmount,
		paymentID:   paymentID,
		qrCodeID:    qrCodeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) CourtID() uuid.UUID    { return r.courtID }
func (r *Reservation) Date() time.Time       { return r.date }
func (r *Reservation) Slots() HourSet        { return r.slots }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) TotalAmount() int64    { return r.totalAmount }
func (r *Reservation) PaymentID() *uuid.UUID { return r.paymentID }
func (r *Reservation) QRCodeID() *string     { return r.qrCodeID }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) AttachPayment(paymentID uuid.UUID) {
	id := paymentID
	r.paymentID = &id
}

// ExpiredByTime is the derived, never-persisted condition: the current
// time is past the reservation's own end boundary.
func (r *Reservation) ExpiredByTime(now time.Time, loc *time.Location) bool {
	return now.After(r.slots.EndBoundary(r.date, loc))
}

// ValidateCheckIn gates the QR check-in path: stored status must be PAID
// and the wall clock must not have passed the end boundary.
func (r *Reservation) ValidateCheckIn(now time.Time, loc *time.Location) error {
	if r.status != StatusPaid {
		return ErrCheckInNotPaid
	}
	if r.ExpiredByTime(now, loc) {
		return ErrCheckInWindowClosed
	}
	return nil
}
