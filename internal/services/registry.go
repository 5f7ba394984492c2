package services

import (
	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	"github.com/yungbote/agroregistry-backend/internal/observability"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

// RegistryConfig tunes NewRegistry. Zero values are usable.
type RegistryConfig struct {
	// Runner replaces the gorm transaction runner, mainly for failure injection.
	Runner    aggregates.TxRunner
	Hooks     aggregates.Hooks
	UserCache validation.UserCache
	Metrics   *observability.Metrics
	HashCost  int
}

// Registry bundles every registry service over one store.
type Registry struct {
	Users           UserService
	States          StateService
	Cities          CityService
	Producers       ProducerService
	RuralProperties RuralPropertyService
	Harvests        HarvestService
	PlantedCultures PlantedCultureService
	Cultivations    CultivationService
	Dashboard       DashboardService

	UserValidator *validation.UserValidator
}

func NewRegistry(db *gorm.DB, log *logger.Logger, cfg RegistryConfig) Registry {
	if log == nil {
		log = logger.Nop()
	}
	deps := aggregates.BaseDeps{DB: db, Log: log, Runner: cfg.Runner, Hooks: cfg.Hooks}

	userRepo := repos.NewUserRepo(db, log)
	stateRepo := repos.NewStateRepo(db, log)
	cityRepo := repos.NewCityRepo(db, log)
	producerRepo := repos.NewProducerRepo(db, log)
	propertyRepo := repos.NewRuralPropertyRepo(db, log)
	harvestRepo := repos.NewHarvestRepo(db, log)
	cultureRepo := repos.NewPlantedCultureRepo(db, log)
	cultivationRepo := repos.NewCultivationRepo(db, log)

	users := validation.NewUserValidator(userRepo, cfg.UserCache)
	states := validation.NewStateValidator(stateRepo)
	cities := validation.NewCityValidator(cityRepo)
	producers := validation.NewProducerValidator(producerRepo)
	properties := validation.NewRuralPropertyValidator(propertyRepo)
	harvests := validation.NewHarvestValidator(harvestRepo)
	cultures := validation.NewPlantedCultureValidator(cultureRepo)

	return Registry{
		Users:           NewUserService(deps, userRepo, users, cfg.HashCost),
		States:          NewStateService(deps, stateRepo, states, users),
		Cities:          NewCityService(deps, cityRepo, cities, states, users),
		Producers:       NewProducerService(deps, producerRepo, producers, cities, users),
		RuralProperties: NewRuralPropertyService(deps, propertyRepo, properties, producers, cities, users),
		Harvests:        NewHarvestService(deps, harvestRepo, harvests, users),
		PlantedCultures: NewPlantedCultureService(deps, cultureRepo, cultures, users),
		Cultivations:    NewCultivationService(deps, cultivationRepo, properties, harvests, cultures, users),
		Dashboard:       NewDashboardService(repos.NewReportRepo(db, log), cfg.Metrics, log),
		UserValidator:   users,
	}
}
