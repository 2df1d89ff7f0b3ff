package bootstrap

import (
	"seatslabs/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	ReminderModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
