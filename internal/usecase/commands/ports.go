package commands

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side repository ports. Implementations live in infra/repository;
// every method takes the DBTX so commands can run them inside a unit of
// work.

type CourtRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*court.Court, error)
	Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type PricingRuleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error
	ListByCourt(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID) ([]*pricing.Rule, error)
	Delete(ctx context.Context, dbtx db.DBTX, courtID, ruleID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to reservation.Status) error
	SetPaymentID(ctx context.Context, dbtx db.DBTX, id, paymentID uuid.UUID) error
	SetQRCodeID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, qrCodeID string) error
	ReleaseSlots(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error
	FindByReferenceForUpdate(ctx context.Context, dbtx db.DBTX, reference string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to payment.Status) error
	StoreGatewayPayload(ctx context.Context, dbtx db.DBTX, id uuid.UUID, rawPayload []byte) error
}

type PaymentMethodSnapshot struct {
	ID       uuid.UUID
	Code     string
	Name     string
	IsActive bool
}

type PaymentMethodRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*PaymentMethodSnapshot, error)
}

// PaymentGateway is the outbound side of the external gateway.
type PaymentGateway interface {
	CalculateFee(ctx context.Context, methodCode string, amount int64) (int64, error)
	CreateTransaction(ctx context.Context, in GatewayTransaction) (*GatewayTransactionResult, error)
}

type GatewayTransaction struct {
	MerchantRef   string
	MethodCode    string
	Amount        int64
	CustomerName  string
	CustomerEmail string
}

type GatewayTransactionResult struct {
	Reference   string
	CheckoutURL string
	Status      string
}
