package validation

import (
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
)

type StateValidator struct{ Reference[types.State] }

func NewStateValidator(repo repos.StateRepo) *StateValidator {
	return &StateValidator{NewReference[types.State](domainagg.KindState, repo)}
}

func (v *StateValidator) ValidateNameUnique(dbc dbctx.Context, name string) error {
	return v.validateUnique(dbc, name)
}

type CityValidator struct{ Reference[types.City] }

func NewCityValidator(repo repos.CityRepo) *CityValidator {
	return &CityValidator{NewReference[types.City](domainagg.KindCity, repo)}
}

// ValidateNameUnique checks the name across every state.
func (v *CityValidator) ValidateNameUnique(dbc dbctx.Context, name string) error {
	return v.validateUnique(dbc, name)
}

type HarvestValidator struct{ Reference[types.Harvest] }

func NewHarvestValidator(repo repos.HarvestRepo) *HarvestValidator {
	return &HarvestValidator{NewReference[types.Harvest](domainagg.KindHarvest, repo)}
}

func (v *HarvestValidator) ValidateNameUnique(dbc dbctx.Context, name string) error {
	return v.validateUnique(dbc, name)
}

type PlantedCultureValidator struct{ Reference[types.PlantedCulture] }

func NewPlantedCultureValidator(repo repos.PlantedCultureRepo) *PlantedCultureValidator {
	return &PlantedCultureValidator{NewReference[types.PlantedCulture](domainagg.KindPlantedCulture, repo)}
}

func (v *PlantedCultureValidator) ValidateNameUnique(dbc dbctx.Context, name string) error {
	return v.validateUnique(dbc, name)
}

type ProducerValidator struct{ Reference[types.Producer] }

func NewProducerValidator(repo repos.ProducerRepo) *ProducerValidator {
	return &ProducerValidator{NewReference[types.Producer](domainagg.KindProducer, repo)}
}

// ValidateCpfCnpjUnique expects the identifier already normalized to digits.
func (v *ProducerValidator) ValidateCpfCnpjUnique(dbc dbctx.Context, identifier string) error {
	return v.validateUnique(dbc, identifier)
}

type RuralPropertyValidator struct{ Reference[types.RuralProperty] }

func NewRuralPropertyValidator(repo repos.RuralPropertyRepo) *RuralPropertyValidator {
	return &RuralPropertyValidator{NewReference[types.RuralProperty](domainagg.KindRuralProperty, repo)}
}

// ValidateAreaTotalCanNotBeGreater fails when arable + vegetation exceeds
// total. Equality is allowed.
func (v *RuralPropertyValidator) ValidateAreaTotalCanNotBeGreater(arable, vegetation, total any) error {
	return ValidateAreaTotalCanNotBeGreater(arable, vegetation, total)
}
