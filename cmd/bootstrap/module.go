package bootstrap

import (
	"go.uber.org/fx"

	"github.com/notfound999/reservations/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
