package components

import (
	"go.uber.org/fx"

	"github.com/notfound999/reservations/internal/pkg/clock"
	"github.com/notfound999/reservations/internal/usecase/commands"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewScheduleQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewScheduleCommands,
		commands.NewTimeOffCommands,
		commands.NewNotificationCommands,
	),
)
