package validation

import (
	"github.com/yungbote/agroregistry-backend/internal/data/repos/table"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
)

// Reference resolves ids of one entity kind against the store.
type Reference[T any] struct {
	kind        domainagg.Kind
	repo        table.TableRepo[T]
	uniqueField string
}

func NewReference[T any](kind domainagg.Kind, repo table.TableRepo[T]) Reference[T] {
	return Reference[T]{
		kind:        kind,
		repo:        repo,
		uniqueField: domainagg.ContractFor(kind).UniqueField,
	}
}


// Validate returns the live row for id or NotFound(kind, id).
func (r Reference[T]) Validate(dbc dbctx.Context, id uint) (*T, error) {
	row, err := r.repo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domainagg.NotFound(r.kind, id)
	}
	return row, nil
}

// validateUnique is an exact, case-sensitive match on the kind's unique column.
func (r Reference[T]) validateUnique(dbc dbctx.Context, value string) error {
	if r.uniqueField == "" {
		return nil
	}
	n, err := r.repo.CountWhere(dbc, r.uniqueField, value)
	if err != nil {
		return err
	}
	if n > 0 {
		return domainagg.DuplicateName(r.kind, r.uniqueField, value)
	}
	return nil
}
