package reservation

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrNoSlots      = errors.New("at least one slot is required")
	ErrInvalidHour  = errors.New("slot hour out of range")
	ErrOutsideHours = errors.New("slot outside bookable hours")
)

// HourSet is the canonical slot representation: a sorted, deduplicated set
// of discrete hour-of-day indices for one court and one calendar date.
// The legacy start/end range shape is intentionally not modeled.
type HourSet struct {
	hours []int
}

func NewHourSet(hours []int) (HourSet, error) {
	if len(hours) == 0 {
		return HourSet{}, ErrNoSlots
	}
	seen := make(map[int]struct{}, len(hours))
	out := make([]int, 0, len(hours))
	for _, h := range hours {
		if h < 0 || h > 23 {
			return HourSet{}, ErrInvalidHour
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	sort.Ints(out)
	return HourSet{hours: out}, nil
}

// ValidateWindow enforces the write-time booking window, hours
// [minHour, maxHour] inclusive.
func (s HourSet) ValidateWindow(minHour, maxHour int) error {
	for _, h := range s.hours {
		if h < minHour || h > maxHour {
			return ErrOutsideHours
		}
	}
	return nil
}

func (s HourSet) Hours() []int {
	out := make([]int, len(s.hours))
	copy(out, s.hours)
	return out
}

func (s HourSet) Len() int {
	return len(s.hours)
}

func (s HourSet) Contains(hour int) bool {
	for _, h := range s.hours {
		if h == hour {
			return true
		}
	}
	return false
}

func (s HourSet) First() int {
	return s.hours[0]
}

func (s HourSet) Last() int {
	return s.hours[len(s.hours)-1]
}

// EndBoundary is the wall-clock end of the reservation: the start of the
// hour after the last booked slot, on the given date in loc.
func (s HourSet) EndBoundary(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, s.Last()+1, 0, 0, 0, loc)
}

func (s HourSet) Intersects(other HourSet) bool {
	for _, h := range other.hours {
		if s.Contains(h) {
			return true
		}
	}
	return false
}
