package queries

import (
	"log/slog"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

// BuildAvailability assembles the 24-slot grid from a rule snapshot and
// the hours currently held by non-terminal reservations. An unpriced hour
// is never bookable, regardless of bookings; the resolver treats a rate of
// zero as unpriced.
func BuildAvailability(courtID uuid.UUID, date time.Time, rules []*pricing.Rule, bookedHours []int) *AvailabilityView {
	resolver := pricing.NewResolver(rules)
	day := date.Weekday()

	booked := make(map[int]struct{}, len(bookedHours))
	for _, h := range bookedHours {
		booked[h] = struct{}{}
	}

	slots := make([]SlotView, 24)
	for hour := range 24 {
		rate, err := resolver.Rate(day, hour)
		if err != nil {
			slots[hour] = SlotView{Hour: hour, Available: false, Rate: 0}
			continue
		}
		if n := resolver.MatchCount(day, hour); n > 1 {
			// Legacy overlapping rows; write-time validation prevents new ones.
			slog.Warn("multiple pricing rules match slot",
				"court_id", courtID.String(), "day", int(day), "hour", hour, "matches", n)
		}
		_, taken := booked[hour]
		slots[hour] = SlotView{Hour: hour, Available: !taken, Rate: rate}
	}

	return &AvailabilityView{
		CourtID: courtID,
		Date:    date,
		Slots:   slots,
	}
}
