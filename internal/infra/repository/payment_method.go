package repository

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentMethodRepository struct{}

func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{}
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.PaymentMethodSnapshot, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, code, name, is_active
		FROM payment_methods
		WHERE id = $1`,
		id,
	)

	var snap commands.PaymentMethodSnapshot
	if err := row.Scan(&snap.ID, &snap.Code, &snap.Name, &snap.IsActive); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment method not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment method", err)
	}

	return &snap, nil
}
