package components

import (
	"go.uber.org/fx"

	"github.com/notfound999/reservations/internal/handler"
	"github.com/notfound999/reservations/internal/handler/api"
	"github.com/notfound999/reservations/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewScheduleHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
