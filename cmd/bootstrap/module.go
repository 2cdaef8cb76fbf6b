package bootstrap

import (
	"stagenight/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	AnalyticsModule,
	JWTModule,
	DomainModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
