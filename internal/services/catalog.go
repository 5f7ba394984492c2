package services

import (
	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

// NameInput creates a harvest or a planted culture.
type NameInput struct {
	Name string `json:"name"`
}

type NamePatch struct {
	Name *string `json:"name"`
}

type HarvestService = CRUD[types.Harvest, NameInput, NamePatch]
type PlantedCultureService = CRUD[types.PlantedCulture, NameInput, NamePatch]

func NewHarvestService(deps aggregates.BaseDeps, repo repos.HarvestRepo, harvests *validation.HarvestValidator, users *validation.UserValidator) HarvestService {
	kind := domainagg.KindHarvest
	return newValidatedCRUD[types.Harvest, *types.Harvest, NameInput, NamePatch](kind, deps, repo, users, crudSpec[types.Harvest, NameInput, NamePatch]{
		build: func(dbc dbctx.Context, in NameInput) (*types.Harvest, error) {
			name, err := validation.RequireText(kind, "name", in.Name)
			if err != nil {
				return nil, err
			}
			if err := harvests.ValidateNameUnique(dbc, name); err != nil {
				return nil, err
			}
			return &types.Harvest{Name: name}, nil
		},
		own: func(row *types.Harvest, actor *types.User) {
			row.CreatedByID, row.CreatedBy = actor.ID, actor
		},
		apply: func(dbc dbctx.Context, row *types.Harvest, patch NamePatch) error {
			return applyUniqueText(dbc, kind, "name", &row.Name, patch.Name, harvests.ValidateNameUnique)
		},
		uniqueValue: func(row *types.Harvest) string { return row.Name },
	})
}

func NewPlantedCultureService(deps aggregates.BaseDeps, repo repos.PlantedCultureRepo, cultures *validation.PlantedCultureValidator, users *validation.UserValidator) PlantedCultureService {
	kind := domainagg.KindPlantedCulture
	return newValidatedCRUD[types.PlantedCulture, *types.PlantedCulture, NameInput, NamePatch](kind, deps, repo, users, crudSpec[types.PlantedCulture, NameInput, NamePatch]{
		build: func(dbc dbctx.Context, in NameInput) (*types.PlantedCulture, error) {
			name, err := validation.RequireText(kind, "name", in.Name)
			if err != nil {
				return nil, err
			}
			if err := cultures.ValidateNameUnique(dbc, name); err != nil {
				return nil, err
			}
			return &types.PlantedCulture{Name: name}, nil
		},
		own: func(row *types.PlantedCulture, actor *types.User) {
			row.CreatedByID, row.CreatedBy = actor.ID, actor
		},
		apply: func(dbc dbctx.Context, row *types.PlantedCulture, patch NamePatch) error {
			return applyUniqueText(dbc, kind, "name", &row.Name, patch.Name, cultures.ValidateNameUnique)
		},
		uniqueValue: func(row *types.PlantedCulture) string { return row.Name },
	})
}
