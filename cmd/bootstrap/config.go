package bootstrap

import (
	"go.uber.org/fx"

	"github.com/notfound999/reservations/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
