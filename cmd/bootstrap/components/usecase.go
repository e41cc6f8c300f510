package components

import (
	"stablebook/internal/pkg/clock"
	"stablebook/internal/usecase/commands"
	"stablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewBookingUseCase,
		commands.NewCalendarUseCase,
		commands.NewLoyaltyUseCase,
		commands.NewRewardUseCase,
		commands.NewHorseUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewRewardQueries,
		queries.NewHorseQueries,
	),
)
