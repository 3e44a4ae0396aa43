package payment

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"courtbook/internal/domain/reservation"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
)

var (
	ErrNegativeAmount = errors.New("payment amount cannot be negative")
	ErrInvalidStatus  = errors.New("invalid payment status")
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransition validates payment status moves: PENDING settles into any
// final status, and a completed payment may still be refunded. Finals
// never regress.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusCompleted || to == StatusFailed || to == StatusRefunded
	case StatusCompleted:
		return to == StatusRefunded
	default:
		return false
	}
}

// Gateway status codes carried by the callback payload.
const (
	GatewayStatusPaid    = "PAID"
	GatewayStatusFailed  = "FAILED"
	GatewayStatusExpired = "EXPIRED"
	GatewayStatusRefund  = "REFUND"
)

// MapGatewayStatus projects a gateway status code onto the local pair of
// payment and reservation statuses. ok=false means the code is unmapped:
// store the payload for audit, transition nothing, flag for review.
func MapGatewayStatus(gatewayStatus string) (Status, reservation.Status, bool) {
	switch gatewayStatus {
	case GatewayStatusPaid:
		return StatusCompleted, reservation.StatusPaid, true
	case GatewayStatusFailed, GatewayStatusExpired:
		return StatusFailed, reservation.StatusExpired, true
	case GatewayStatusRefund:
		return StatusRefunded, reservation.StatusCancelled, true
	default:
		return "", "", false
	}
}

// NewMerchantRef builds the unique correlation key shared with the
// gateway: timestamp plus random suffix, never reused across payments.
func NewMerchantRef(now time.Time) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("FTS-%d-%s", now.UnixNano(), hex.EncodeToString(suffix))
}

type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        int64
	fee           int64
	status        Status
	methodID      uuid.UUID
	reference     string
	notes         *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(reservationID, methodID uuid.UUID, amount, fee int64, now time.Time) (*Payment, error) {
	if amount < 0 || fee < 0 {
		return nil, ErrNegativeAmount
	}
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		fee:           fee,
		status:        StatusPending,
		methodID:      methodID,
		reference:     NewMerchantRef(now),
	}, nil
}

func ReconstructPayment(
	id, reservationID uuid.UUID,
	amount, fee int64,
	status Status,
	methodID uuid.UUID,
	reference string,
	notes *string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		fee:           fee,
		status:        status,
		methodID:      methodID,
		reference:     reference,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) Amount() int64            { return p.amount }
func (p *Payment) Fee() int64               { return p.fee }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) MethodID() uuid.UUID      { return p.methodID }
func (p *Payment) Reference() string        { return p.reference }
func (p *Payment) Notes() *string           { return p.notes }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
