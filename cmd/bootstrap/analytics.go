package bootstrap

import (
	"stagenight/internal/infra/analytics"
	"stagenight/internal/pkg/config"

	"go.uber.org/fx"
)

var AnalyticsModule = fx.Module("analytics",
	fx.Provide(
		NewAnalyticsPublisher,
	),
)

func NewAnalyticsPublisher(cfg config.Config) *analytics.Publisher {
	return analytics.NewPublisher(cfg.AMQP)
}
