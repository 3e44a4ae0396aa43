package pricing

import (
	"errors"
	"time"
)

// ErrNoRule means no rule prices the requested hour. Booking must reject
// the whole request on this; an unpriced hour is never silently free.
var ErrNoRule = errors.New("no pricing rule for hour")

// Resolver maps (day-of-week, hour) to a rate over a fixed rule snapshot.
type Resolver struct {
	rules []*Rule
}

func NewResolver(rules []*Rule) *Resolver {
	return &Resolver{rules: rules}
}

// Rate returns the rate of the first matching rule in stored order.
// Write-time overlap rejection makes the match unique for clean data;
// MatchCount lets callers detect legacy overlapping rows. A matching rule
// with rate 0 marks the hour closed: it resolves to ErrNoRule so the hour
// is neither bookable nor shown as available.
func (r *Resolver) Rate(day time.Weekday, hour int) (int64, error) {
	for _, rule := range r.rules {
		if rule.Matches(day, hour) {
			if rule.Rate() == 0 {
				return 0, ErrNoRule
			}
			return rule.Rate(), nil
		}
	}
	return 0, ErrNoRule
}

func (r *Resolver) MatchCount(day time.Weekday, hour int) int {
	n := 0
	for _, rule := range r.rules {
		if rule.Matches(day, hour) {
			n++
		}
	}
	return n
}

// ValidateNoOverlap checks a candidate rule against existing rules for the
// same court and returns ErrOverlappingRule on any shared (day, hour) cell.
func ValidateNoOverlap(candidate *Rule, existing []*Rule) error {
	for _, rule := range existing {
		if rule.CourtID() == candidate.CourtID() && rule.Overlaps(candidate) {
			return ErrOverlappingRule
		}
	}
	return nil
}
