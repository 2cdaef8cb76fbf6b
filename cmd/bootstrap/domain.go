package bootstrap

import (
	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/event"
	"stagenight/internal/domain/intent"
	"stagenight/internal/pkg/config"

	"go.uber.org/fx"
)

// DomainModule builds the pure domain services from configuration. These are
// static for the lifetime of the process.
var DomainModule = fx.Module("domain",
	fx.Provide(
		NewCatalog,
		NewPhaseResolver,
		NewAllowanceCalculator,
		NewCheckoutURLBuilder,
	),
)

func NewCatalog(cfg config.Config) (*event.Catalog, error) {
	return event.NewCatalog(event.Settings{
		TimeZone:       cfg.Event.TimeZone,
		TueDate:        cfg.Event.TueDate,
		ThuDate:        cfg.Event.ThuDate,
		ShowTimes:      cfg.Event.ShowTimes,
		SalesCloseHour: cfg.Event.SalesCloseHour,
	})
}

func NewPhaseResolver(cfg config.Config, catalog *event.Catalog) (*allowance.Resolver, error) {
	return allowance.NewResolver(cfg.Allowance.SecondWaveCutover, catalog.Location())
}

func NewAllowanceCalculator(cfg config.Config) *allowance.Calculator {
	return allowance.NewCalculator(allowance.Constants{
		Base:              cfg.Allowance.Base,
		VolunteerBonus:    cfg.Allowance.VolunteerBonus,
		SecondWaveBonus:   cfg.Allowance.SecondWaveBonus,
		MaxStandard:       cfg.Allowance.MaxStandard,
		MaxVolunteer:      cfg.Allowance.MaxVolunteer,
		DailyMaxStandard:  cfg.Allowance.DailyMaxStandard,
		DailyMaxVolunteer: cfg.Allowance.DailyMaxVolunteer,
	})
}

func NewCheckoutURLBuilder(cfg config.Config) intent.URLBuilder {
	return intent.NewURLBuilder(cfg.Checkout.URLTemplate)
}
