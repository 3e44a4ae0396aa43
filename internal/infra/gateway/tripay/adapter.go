package tripay

import (
	"context"

	"courtbook/internal/usecase/commands"
)

// Gateway adapts the HTTP client to the usecase port.
type Gateway struct {
	client *Client
}

func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

var _ commands.PaymentGateway = (*Gateway)(nil)

func (g *Gateway) CalculateFee(ctx context.Context, methodCode string, amount int64) (int64, error) {
	return g.client.CalculateFee(ctx, methodCode, amount)
}

func (g *Gateway) CreateTransaction(ctx context.Context, in commands.GatewayTransaction) (*commands.GatewayTransactionResult, error) {
	tx, err := g.client.CreateTransaction(ctx, TransactionInput{
		MerchantRef:   in.MerchantRef,
		MethodCode:    in.MethodCode,
		Amount:        in.Amount,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}
	return &commands.GatewayTransactionResult{
		Reference:   tx.Reference,
		CheckoutURL: tx.CheckoutURL,
		Status:      tx.Status,
	}, nil
}
