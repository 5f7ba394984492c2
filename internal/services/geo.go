package services

import (
	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type StateInput struct {
	UF   string `json:"uf"`
	Name string `json:"name"`
}

type StatePatch struct {
	UF   *string `json:"uf"`
	Name *string `json:"name"`
}

type StateService = CRUD[types.State, StateInput, StatePatch]

func NewStateService(deps aggregates.BaseDeps, repo repos.StateRepo, states *validation.StateValidator, users *validation.UserValidator) StateService {
	return newValidatedCRUD[types.State, *types.State, StateInput, StatePatch](domainagg.KindState, deps, repo, users, crudSpec[types.State, StateInput, StatePatch]{
		build: func(dbc dbctx.Context, in StateInput) (*types.State, error) {
			uf, err := validation.NormalizeUF(in.UF)
			if err != nil {
				return nil, err
			}
			name, err := validation.RequireText(domainagg.KindState, "name", in.Name)
			if err != nil {
				return nil, err
			}
			if err := states.ValidateNameUnique(dbc, name); err != nil {
				return nil, err
			}
			return &types.State{UF: uf, Name: name}, nil
		},
		apply: func(dbc dbctx.Context, row *types.State, patch StatePatch) error {
			if patch.UF != nil {
				uf, err := validation.NormalizeUF(*patch.UF)
				if err != nil {
					return err
				}
				row.UF = uf
			}
			return applyUniqueText(dbc, domainagg.KindState, "name", &row.Name, patch.Name, states.ValidateNameUnique)
		},
		uniqueValue: func(row *types.State) string { return row.Name },
	})
}

type CityInput struct {
	Name    string `json:"name"`
	StateID uint   `json:"state_id"`
}

type CityPatch struct {
	Name    *string `json:"name"`
	StateID *uint   `json:"state_id"`
}

type CityService = CRUD[types.City, CityInput, CityPatch]

func NewCityService(deps aggregates.BaseDeps, repo repos.CityRepo, cities *validation.CityValidator, states *validation.StateValidator, users *validation.UserValidator) CityService {
	return newValidatedCRUD[types.City, *types.City, CityInput, CityPatch](domainagg.KindCity, deps, repo, users, crudSpec[types.City, CityInput, CityPatch]{
		build: func(dbc dbctx.Context, in CityInput) (*types.City, error) {
			name, err := validation.RequireText(domainagg.KindCity, "name", in.Name)
			if err != nil {
				return nil, err
			}
			if err := validation.RequireID(domainagg.KindCity, "state_id", in.StateID); err != nil {
				return nil, err
			}
			state, err := states.Validate(dbc, in.StateID)
			if err != nil {
				return nil, err
			}
			if err := cities.ValidateNameUnique(dbc, name); err != nil {
				return nil, err
			}
			return &types.City{Name: name, StateID: state.ID, State: state}, nil
		},
		apply: func(dbc dbctx.Context, row *types.City, patch CityPatch) error {
			if err := applyRef(dbc, domainagg.KindCity, "state_id", patch.StateID, &row.StateID, &row.State, states.Validate); err != nil {
				return err
			}
			return applyUniqueText(dbc, domainagg.KindCity, "name", &row.Name, patch.Name, cities.ValidateNameUnique)
		},
		uniqueValue: func(row *types.City) string { return row.Name },
	})
}
