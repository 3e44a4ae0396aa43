package builder

import (
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationBuilder assembles a priced reservation over a weekday-covering
// rule set. Defaults match a Wednesday booking on a court open 08-22 with a
// flat 50000 rate.
type ReservationBuilder struct {
	userID uuid.UUID
	date   time.Time
	hours  []int
	court  *CourtBuilder
	rules  []*RuleBuilder
}

func NewReservationBuilder() *ReservationBuilder {
	b := &ReservationBuilder{
		userID: uuid.New(),
		// A Wednesday.
		date:  time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		hours: []int{10, 11},
		court: NewCourtBuilder(),
	}
	b.rules = []*RuleBuilder{
		NewRuleBuilder().WithDays(time.Sunday, time.Saturday).WithHours(8, 22).WithRate(50000),
	}
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.userID = id
	return b
}

func (b *ReservationBuilder) WithDate(date time.Time) *ReservationBuilder {
	b.date = date
	return b
}

func (b *ReservationBuilder) WithSlots(hours ...int) *ReservationBuilder {
	b.hours = hours
	return b
}

func (b *ReservationBuilder) WithCourt(cb *CourtBuilder) *ReservationBuilder {
	b.court = cb
	return b
}

func (b *ReservationBuilder) WithRules(rbs ...*RuleBuilder) *ReservationBuilder {
	b.rules = rbs
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	courtEntity, err := b.court.BuildDomain()
	if err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(b.rules))
	for _, rb := range b.rules {
		rule, err := rb.WithCourtID(courtEntity.ID()).BuildDomain()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	slots, err := reservation.NewHourSet(b.hours)
	if err != nil {
		return nil, err
	}

	return reservation.NewReservation(b.userID, courtEntity, b.date, slots, pricing.NewResolver(rules))
}

func (b *ReservationBuilder) BuildCourt() (*court.Court, error) {
	return b.court.BuildDomain()
}
