package services

import (
	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type ProducerInput struct {
	CpfCnpj string `json:"cpf_cnpj"`
	Name    string `json:"name"`
	CityID  uint   `json:"city_id"`
}

type ProducerPatch struct {
	CpfCnpj *string `json:"cpf_cnpj"`
	Name    *string `json:"name"`
	CityID  *uint   `json:"city_id"`
}

type ProducerService = CRUD[types.Producer, ProducerInput, ProducerPatch]

// NewProducerService wires the producer CRUD. Remove cascades to the
// producer's rural properties and their cultivations in the same transaction.
func NewProducerService(deps aggregates.BaseDeps, repo repos.ProducerRepo, producers *validation.ProducerValidator, cities *validation.CityValidator, users *validation.UserValidator) ProducerService {
	kind := domainagg.KindProducer
	log := serviceLog(deps, kind)
	return newValidatedCRUD[types.Producer, *types.Producer, ProducerInput, ProducerPatch](kind, deps, repo, users, crudSpec[types.Producer, ProducerInput, ProducerPatch]{
		build: func(dbc dbctx.Context, in ProducerInput) (*types.Producer, error) {
			identifier, err := validation.ValidateCpfCnpj(in.CpfCnpj)
			if err != nil {
				return nil, err
			}
			name, err := validation.RequireText(kind, "name", in.Name)
			if err != nil {
				return nil, err
			}
			if err := validation.RequireID(kind, "city_id", in.CityID); err != nil {
				return nil, err
			}
			city, err := cities.Validate(dbc, in.CityID)
			if err != nil {
				return nil, err
			}
			if err := producers.ValidateCpfCnpjUnique(dbc, identifier); err != nil {
				return nil, err
			}
			return &types.Producer{CpfCnpj: identifier, Name: name, CityID: city.ID, City: city}, nil
		},
		own: func(row *types.Producer, actor *types.User) {
			row.CreatedByID, row.CreatedBy = actor.ID, actor
		},
		apply: func(dbc dbctx.Context, row *types.Producer, patch ProducerPatch) error {
			if patch.CpfCnpj != nil {
				identifier, err := validation.ValidateCpfCnpj(*patch.CpfCnpj)
				if err != nil {
					return err
				}
				if identifier != row.CpfCnpj {
					if err := producers.ValidateCpfCnpjUnique(dbc, identifier); err != nil {
						return err
					}
				}
				row.CpfCnpj = identifier
			}
			if err := applyText(kind, "name", &row.Name, patch.Name); err != nil {
				return err
			}
			return applyRef(dbc, kind, "city_id", patch.CityID, &row.CityID, &row.City, cities.Validate)
		},
		uniqueValue: func(row *types.Producer) string { return row.CpfCnpj },
		remove: func(dbc dbctx.Context, id uint) error {
			if _, err := producers.Validate(dbc, id); err != nil {
				return err
			}
			res, err := aggregates.CascadeDeleteProducer(dbc, id)
			if err != nil {
				return err
			}
			log.Debug("producer cascade",
				"producer_id", id,
				"rural_properties", res.RuralProperties,
				"cultivations", res.Cultivations,
			)
			return nil
		},
	})
}
