package bootstrap

import (
	"time"

	"courtbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.TripayConfig { return cfg.Tripay },
		NewBookingLocation,
	),
)

// NewBookingLocation resolves the timezone court days are interpreted in.
// Failing fast here beats every handler re-parsing the zone per request.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
