package components

import (
	"courtbook/internal/pkg/clock"
	"courtbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		fx.Annotate(
			commands.NewReservationCommands,
			fx.As(new(commands.ReservationUseCase)),
		),
		fx.Annotate(
			commands.NewCallbackCommands,
			fx.As(new(commands.CallbackUseCase)),
		),
		fx.Annotate(
			commands.NewCourtCommands,
			fx.As(new(commands.CourtUseCase)),
		),
		fx.Annotate(
			commands.NewPricingCommands,
			fx.As(new(commands.PricingUseCase)),
		),
	),
)
