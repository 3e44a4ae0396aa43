package components

import (
	"courtbook/internal/infra/gateway/tripay"
	"courtbook/internal/infra/readstore"
	"courtbook/internal/infra/repository"
	"courtbook/internal/infra/uow"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,

		// Write-side repositories
		fx.Annotate(
			repository.NewCourtRepository,
			fx.As(new(commands.CourtRepository)),
		),
		fx.Annotate(
			repository.NewPricingRuleRepository,
			fx.As(new(commands.PricingRuleRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repository.NewPaymentMethodRepository,
			fx.As(new(commands.PaymentMethodRepository)),
		),

		// Payment gateway
		tripay.NewClient,
		fx.Annotate(
			tripay.NewGateway,
			fx.As(new(commands.PaymentGateway)),
		),

		// Read stores
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationQueries)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingQueries)),
		),
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtQueries)),
		),
	),
)
