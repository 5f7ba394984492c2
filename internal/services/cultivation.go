package services

import (
	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type CultivationInput struct {
	RuralPropertyID  uint `json:"rural_property_id"`
	HarvestID        uint `json:"harvest_id"`
	PlantedCultureID uint `json:"planted_culture_id"`
}

// CultivationPatch re-points any subset of the three references.
type CultivationPatch struct {
	RuralPropertyID  *uint `json:"rural_property_id"`
	HarvestID        *uint `json:"harvest_id"`
	PlantedCultureID *uint `json:"planted_culture_id"`
}

type CultivationService = CRUD[types.Cultivation, CultivationInput, CultivationPatch]

func NewCultivationService(
	deps aggregates.BaseDeps,
	repo repos.CultivationRepo,
	properties *validation.RuralPropertyValidator,
	harvests *validation.HarvestValidator,
	cultures *validation.PlantedCultureValidator,
	users *validation.UserValidator,
) CultivationService {
	kind := domainagg.KindCultivation
	return newValidatedCRUD[types.Cultivation, *types.Cultivation, CultivationInput, CultivationPatch](kind, deps, repo, users, crudSpec[types.Cultivation, CultivationInput, CultivationPatch]{
		build: func(dbc dbctx.Context, in CultivationInput) (*types.Cultivation, error) {
			if err := validation.RequireID(kind, "rural_property_id", in.RuralPropertyID); err != nil {
				return nil, err
			}
			if err := validation.RequireID(kind, "harvest_id", in.HarvestID); err != nil {
				return nil, err
			}
			if err := validation.RequireID(kind, "planted_culture_id", in.PlantedCultureID); err != nil {
				return nil, err
			}
			property, err := properties.Validate(dbc, in.RuralPropertyID)
			if err != nil {
				return nil, err
			}
			harvest, err := harvests.Validate(dbc, in.HarvestID)
			if err != nil {
				return nil, err
			}
			culture, err := cultures.Validate(dbc, in.PlantedCultureID)
			if err != nil {
				return nil, err
			}
			return &types.Cultivation{
				RuralPropertyID:  property.ID,
				RuralProperty:    property,
				HarvestID:        harvest.ID,
				Harvest:          harvest,
				PlantedCultureID: culture.ID,
				PlantedCulture:   culture,
			}, nil
		},
		own: func(row *types.Cultivation, actor *types.User) {
			row.CreatedByID, row.CreatedBy = actor.ID, actor
		},
		apply: func(dbc dbctx.Context, row *types.Cultivation, patch CultivationPatch) error {
			if err := applyRef(dbc, kind, "rural_property_id", patch.RuralPropertyID, &row.RuralPropertyID, &row.RuralProperty, properties.Validate); err != nil {
				return err
			}
			if err := applyRef(dbc, kind, "harvest_id", patch.HarvestID, &row.HarvestID, &row.Harvest, harvests.Validate); err != nil {
				return err
			}
			return applyRef(dbc, kind, "planted_culture_id", patch.PlantedCultureID, &row.PlantedCultureID, &row.PlantedCulture, cultures.Validate)
		},
	})
}
