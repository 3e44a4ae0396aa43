//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed identities every e2e test can rely on.
var (
	CustomerID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	AdminID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	MethodID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// SeedReferenceData loads the rows everything else references: two users
// and one active payment method.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, name, role) VALUES
			($1, 'customer@example.com', 'Customer', 'customer'),
			($2, 'admin@example.com', 'Admin', 'admin')`,
		CustomerID, AdminID,
	)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO payment_methods (id, code, name, is_active)
		VALUES ($1, 'QRIS', 'QRIS', true)`,
		MethodID,
	)
	return err
}

func CreateCourt(pool *pgxpool.Pool, name string, openHour, closeHour int) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO courts (id, name, open_hour, close_hour, is_active)
		VALUES ($1, $2, $3, $4, true)`,
		id, name, openHour, closeHour,
	)
	return id, err
}

func CreateRule(pool *pgxpool.Pool, courtID uuid.UUID, startDay, endDay, startHour, endHour int, rate int64) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO pricing_rules (id, court_id, start_day, end_day, start_hour, end_hour, rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, courtID, startDay, endDay, startHour, endHour, rate,
	)
	return id, err
}
