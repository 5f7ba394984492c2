package services

import (
	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	"github.com/yungbote/agroregistry-backend/internal/domain/agro"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

// RuralPropertyInput areas accept JSON numbers or numeric strings.
type RuralPropertyInput struct {
	FarmName       string    `json:"farm_name"`
	TotalArea      agro.Area `json:"total_area"`
	ArableArea     agro.Area `json:"arable_area"`
	VegetationArea agro.Area `json:"vegetation_area"`
	ProducerID     uint      `json:"producer_id"`
	CityID         uint      `json:"city_id"`
}

type RuralPropertyPatch struct {
	FarmName       *string    `json:"farm_name"`
	TotalArea      *agro.Area `json:"total_area"`
	ArableArea     *agro.Area `json:"arable_area"`
	VegetationArea *agro.Area `json:"vegetation_area"`
	ProducerID     *uint      `json:"producer_id"`
	CityID         *uint      `json:"city_id"`
}

type RuralPropertyService = CRUD[types.RuralProperty, RuralPropertyInput, RuralPropertyPatch]

func NewRuralPropertyService(
	deps aggregates.BaseDeps,
	repo repos.RuralPropertyRepo,
	properties *validation.RuralPropertyValidator,
	producers *validation.ProducerValidator,
	cities *validation.CityValidator,
	users *validation.UserValidator,
) RuralPropertyService {
	kind := domainagg.KindRuralProperty
	return newValidatedCRUD[types.RuralProperty, *types.RuralProperty, RuralPropertyInput, RuralPropertyPatch](kind, deps, repo, users, crudSpec[types.RuralProperty, RuralPropertyInput, RuralPropertyPatch]{
		build: func(dbc dbctx.Context, in RuralPropertyInput) (*types.RuralProperty, error) {
			farm, err := validation.RequireText(kind, "farm_name", in.FarmName)
			if err != nil {
				return nil, err
			}
			row := &types.RuralProperty{
				FarmName:       farm,
				TotalArea:      in.TotalArea.Float64(),
				ArableArea:     in.ArableArea.Float64(),
				VegetationArea: in.VegetationArea.Float64(),
			}
			if err := normalizeAreas(row); err != nil {
				return nil, err
			}
			if err := validation.RequireID(kind, "producer_id", in.ProducerID); err != nil {
				return nil, err
			}
			if err := validation.RequireID(kind, "city_id", in.CityID); err != nil {
				return nil, err
			}
			producer, err := producers.Validate(dbc, in.ProducerID)
			if err != nil {
				return nil, err
			}
			city, err := cities.Validate(dbc, in.CityID)
			if err != nil {
				return nil, err
			}
			row.ProducerID, row.Producer = producer.ID, producer
			row.CityID, row.City = city.ID, city
			return row, nil
		},
		own: func(row *types.RuralProperty, actor *types.User) {
			row.CreatedByID, row.CreatedBy = actor.ID, actor
		},
		apply: func(dbc dbctx.Context, row *types.RuralProperty, patch RuralPropertyPatch) error {
			if err := applyText(kind, "farm_name", &row.FarmName, patch.FarmName); err != nil {
				return err
			}
			if patch.TotalArea != nil {
				row.TotalArea = patch.TotalArea.Float64()
			}
			if patch.ArableArea != nil {
				row.ArableArea = patch.ArableArea.Float64()
			}
			if patch.VegetationArea != nil {
				row.VegetationArea = patch.VegetationArea.Float64()
			}
			if err := normalizeAreas(row); err != nil {
				return err
			}
			if err := applyRef(dbc, kind, "producer_id", patch.ProducerID, &row.ProducerID, &row.Producer, producers.Validate); err != nil {
				return err
			}
			return applyRef(dbc, kind, "city_id", patch.CityID, &row.CityID, &row.City, cities.Validate)
		},
		// Runs on the merged row, so an update touching only total_area is
		// still checked against the stored arable and vegetation areas.
		invariants: func(row *types.RuralProperty) error {
			return properties.ValidateAreaTotalCanNotBeGreater(row.ArableArea, row.VegetationArea, row.TotalArea)
		},
	})
}

// normalizeAreas rounds the areas to the stored scale before any check, so
// the row that passes the invariant is exactly the row persisted.
func normalizeAreas(row *types.RuralProperty) error {
	row.TotalArea = agro.Quantize(row.TotalArea)
	row.ArableArea = agro.Quantize(row.ArableArea)
	row.VegetationArea = agro.Quantize(row.VegetationArea)
	if err := validation.ValidateAreaNonNegative("total_area", row.TotalArea); err != nil {
		return err
	}
	if err := validation.ValidateAreaNonNegative("arable_area", row.ArableArea); err != nil {
		return err
	}
	return validation.ValidateAreaNonNegative("vegetation_area", row.VegetationArea)
}
