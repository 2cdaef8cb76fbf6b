package components

import (
	"stagenight/internal/infra/analytics"
	"stagenight/internal/infra/lock"
	"stagenight/internal/infra/readstore"
	repo_impl "stagenight/internal/infra/repository"
	"stagenight/internal/usecase/commands"
	"stagenight/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewNightStateRepository,
			fx.As(new(commands.NightStateRepository)),
		),
		fx.Annotate(
			repo_impl.NewDailyLimitRepository,
			fx.As(new(commands.DailyLimitRepository)),
		),
		fx.Annotate(
			repo_impl.NewIntentRepository,
			fx.As(new(commands.IntentRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewNightStateReadStore,
			fx.As(new(queries.NightStateReadStore)),
		),
		fx.Annotate(
			lock.NewHouseholdLock,
			fx.As(new(commands.HouseholdLock)),
		),
		func(p *analytics.Publisher) commands.AnalyticsSink { return p },
	),
)
