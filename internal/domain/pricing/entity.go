package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayRange  = errors.New("day range must satisfy 0 <= start <= end <= 6")
	ErrInvalidHourRange = errors.New("hour range must satisfy 0 <= start < end <= 24")
	ErrNegativeRate     = errors.New("rate cannot be negative")
	ErrOverlappingRule  = errors.New("rule overlaps an existing rule")
)

// Rule prices the hours [StartHour, EndHour) on the days
// [StartDay, EndDay] (0=Sunday..6=Saturday, inclusive; wrap not supported).
type Rule struct {
	id        uuid.UUID
	courtID   uuid.UUID
	startDay  time.Weekday
	endDay    time.Weekday
	startHour int
	endHour   int
	rate      int64
	createdAt time.Time
}

func NewRule(courtID uuid.UUID, startDay, endDay time.Weekday, startHour, endHour int, rate int64) (*Rule, error) {
	if startDay < time.Sunday || endDay > time.Saturday || startDay > endDay {
		return nil, ErrInvalidDayRange
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, ErrInvalidHourRange
	}
	if rate < 0 {
		return nil, ErrNegativeRate
	}
	return &Rule{
		id:        uuid.New(),
		courtID:   courtID,
		startDay:  startDay,
		endDay:    endDay,
		startHour: startHour,
		endHour:   endHour,
		rate:      rate,
	}, nil
}

func ReconstructRule(id, courtID uuid.UUID, startDay, endDay time.Weekday, startHour, endHour int, rate int64, createdAt time.Time) *Rule {
	return &Rule{
		id:        id,
		courtID:   courtID,
		startDay:  startDay,
		endDay:    endDay,
		startHour: startHour,
		endHour:   endHour,
		rate:      rate,
		createdAt: createdAt,
	}
}

func (r *Rule) ID() uuid.UUID         { return r.id }
func (r *Rule) CourtID() uuid.UUID    { return r.courtID }
func (r *Rule) StartDay() time.Weekday { return r.startDay }
func (r *Rule) EndDay() time.Weekday   { return r.endDay }
func (r *Rule) StartHour() int        { return r.startHour }
func (r *Rule) EndHour() int          { return r.endHour }
func (r *Rule) Rate() int64           { return r.rate }
func (r *Rule) CreatedAt() time.Time  { return r.createdAt }

func (r *Rule) Matches(day time.Weekday, hour int) bool {
	return day >= r.startDay && day <= r.endDay &&
		hour >= r.startHour && hour < r.endHour
}

// Overlaps reports whether both rules price at least one common (day, hour)
// cell. Rule sets are kept provably non-overlapping at write time, so rate
// resolution never depends on stored order.
func (r *Rule) Overlaps(other *Rule) bool {
	if r.startDay > other.endDay || other.startDay > r.endDay {
		return false
	}
	return r.startHour < other.endHour && other.startHour < r.endHour
}
