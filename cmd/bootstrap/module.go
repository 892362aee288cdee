package bootstrap

import (
	"parkspot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StorageModule,
	JWTModule,
	JobsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
