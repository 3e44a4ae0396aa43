//go:build unit

package payment_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGatewayStatus(t *testing.T) {
	testCases := []struct {
		name            string
		gatewayStatus   string
		expectedPayment payment.Status
		expectedRes     reservation.Status
		mapped          bool
	}{
		{name: "PAID", gatewayStatus: "PAID", expectedPayment: payment.StatusCompleted, expectedRes: reservation.StatusPaid, mapped: true},
		{name: "FAILED", gatewayStatus: "FAILED", expectedPayment: payment.StatusFailed, expectedRes: reservation.StatusExpired, mapped: true},
		{name: "EXPIRED behaves as FAILED", gatewayStatus: "EXPIRED", expectedPayment: payment.StatusFailed, expectedRes: reservation.StatusExpired, mapped: true},
		{name: "REFUND", gatewayStatus: "REFUND", expectedPayment: payment.StatusRefunded, expectedRes: reservation.StatusCancelled, mapped: true},
		{name: "unknown code is unmapped", gatewayStatus: "ON_HOLD", mapped: false},
		{name: "lowercase is not coerced", gatewayStatus: "paid", mapped: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payStatus, resStatus, ok := payment.MapGatewayStatus(tc.gatewayStatus)
			require.Equal(t, tc.mapped, ok)
			if tc.mapped {
				assert.Equal(t, tc.expectedPayment, payStatus)
				assert.Equal(t, tc.expectedRes, resStatus)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    payment.Status
		to      payment.Status
		allowed bool
	}{
		{name: "pending settles", from: payment.StatusPending, to: payment.StatusCompleted, allowed: true},
		{name: "pending fails", from: payment.StatusPending, to: payment.StatusFailed, allowed: true},
		{name: "pending refunds", from: payment.StatusPending, to: payment.StatusRefunded, allowed: true},
		{name: "completed refunds", from: payment.StatusCompleted, to: payment.StatusRefunded, allowed: true},
		{name: "completed cannot fail", from: payment.StatusCompleted, to: payment.StatusFailed, allowed: false},
		{name: "failed is final", from: payment.StatusFailed, to: payment.StatusCompleted, allowed: false},
		{name: "refunded is final", from: payment.StatusRefunded, to: payment.StatusCompleted, allowed: false},
		{name: "no self transition", from: payment.StatusCompleted, to: payment.StatusCompleted, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, payment.CanTransition(tc.from, tc.to))
		})
	}
}

func TestNewPayment(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	t.Run("starts pending with a merchant reference", func(t *testing.T) {
		p, err := payment.NewPayment(uuid.New(), uuid.New(), 130000, 2500, now)
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, int64(130000), p.Amount())
		assert.Equal(t, int64(2500), p.Fee())
		assert.NotEmpty(t, p.Reference())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := payment.NewPayment(uuid.New(), uuid.New(), -1, 0, now)
		require.ErrorIs(t, err, payment.ErrNegativeAmount)
	})
}

func TestNewMerchantRef(t *testing.T) {
	now := time.Now()
	refs := make(map[string]struct{})
	for range 100 {
		ref := payment.NewMerchantRef(now)
		assert.Contains(t, ref, "FTS-")
		_, dup := refs[ref]
		require.False(t, dup, "merchant refs must not repeat")
		refs[ref] = struct{}{}
	}
}
