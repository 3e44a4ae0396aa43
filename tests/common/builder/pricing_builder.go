package builder

import (
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

type RuleBuilder struct {
	courtID   uuid.UUID
	startDay  time.Weekday
	endDay    time.Weekday
	startHour int
	endHour   int
	rate      int64
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		courtID:   uuid.New(),
		startDay:  time.Monday,
		endDay:    time.Friday,
		startHour: 8,
		endHour:   17,
		rate:      50000,
	}
}

func (b *RuleBuilder) WithCourtID(id uuid.UUID) *RuleBuilder {
	b.courtID = id
	return b
}

func (b *RuleBuilder) WithDays(start, end time.Weekday) *RuleBuilder {
	b.startDay = start
	b.endDay = end
	return b
}

func (b *RuleBuilder) WithHours(start, end int) *RuleBuilder {
	b.startHour = start
	b.endHour = end
	return b
}

func (b *RuleBuilder) WithRate(rate int64) *RuleBuilder {
	b.rate = rate
	return b
}

func (b *RuleBuilder) BuildDomain() (*pricing.Rule, error) {
	return pricing.NewRule(b.courtID, b.startDay, b.endDay, b.startHour, b.endHour, b.rate)
}
