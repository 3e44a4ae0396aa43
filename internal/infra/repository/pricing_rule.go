package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type PricingRuleRepository struct{}

func NewPricingRuleRepository() *PricingRuleRepository {
	return &PricingRuleRepository{}
}

func (r *PricingRuleRepository) Create(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO pricing_rules (id, court_id, start_day, end_day, start_hour, end_hour, rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rule.ID(), rule.CourtID(),
		int(rule.StartDay()), int(rule.EndDay()),
		rule.StartHour(), rule.EndHour(), rule.Rate(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return nil
}

// ListByCourt returns rules in stored order; resolution is first-match.
func (r *PricingRuleRepository) ListByCourt(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID) ([]*pricing.Rule, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, court_id, start_day, end_day, start_hour, end_hour, rate, created_at
		FROM pricing_rules
		WHERE court_id = $1
		ORDER BY created_at, id`,
		courtID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		var (
			id, cid              uuid.UUID
			startDay, endDay     int
			startHour, endHour   int
			rate                 int64
			createdAt            time.Time
		)
		if err := rows.Scan(&id, &cid, &startDay, &endDay, &startHour, &endHour, &rate, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		rules = append(rules, pricing.ReconstructRule(
			id, cid, time.Weekday(startDay), time.Weekday(endDay), startHour, endHour, rate, createdAt,
		))
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rules", rows.Err())
	}

	return rules, nil
}

func (r *PricingRuleRepository) Delete(ctx context.Context, dbtx db.DBTX, courtID, ruleID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM pricing_rules WHERE id = $1 AND court_id = $2`,
		ruleID, courtID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}
