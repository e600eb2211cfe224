package components

import (
	"go.uber.org/fx"

	"github.com/notfound999/reservations/internal/infra/readstore"
	"github.com/notfound999/reservations/internal/infra/repository"
	"github.com/notfound999/reservations/internal/usecase/commands"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewTimeOffReadStore,
			fx.As(new(queries.TimeOffReadStore)),
		),
		readstore.NewNotificationReadStore,
		fx.Annotate(
			func(s *readstore.NotificationReadStore) *readstore.NotificationReadStore { return s },
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(commands.ScheduleRepository)),
		),
		fx.Annotate(
			repository.NewTimeOffRepository,
			fx.As(new(commands.TimeOffRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserDirectory)),
		),
		fx.Annotate(
			repository.NewBusinessRepository,
			fx.As(new(commands.BusinessDirectory)),
		),
	),
)
