package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"github.com/notfound999/reservations/internal/infra/readstore"
	"github.com/notfound999/reservations/internal/notify"
	"github.com/notfound999/reservations/internal/pkg/config"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			NewDispatcher,
			fx.As(new(notify.Notifier)),
		),
	),
)

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, store *readstore.NotificationReadStore) *notify.Dispatcher {
	d := notify.NewDispatcher(store, cfg.Notifier.QueueSize)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			d.Stop()
			return nil
		},
	})

	return d
}
