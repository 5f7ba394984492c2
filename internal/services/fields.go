package services

import (
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type uniqueCheck func(dbc dbctx.Context, value string) error

// applyUniqueText merges a patched unique text field. Uniqueness is only
// checked when the value actually changes.
func applyUniqueText(dbc dbctx.Context, kind domainagg.Kind, field string, current *string, patch *string, check uniqueCheck) error {
	if patch == nil {
		return nil
	}
	value, err := validation.RequireText(kind, field, *patch)
	if err != nil {
		return err
	}
	if value != *current {
		if err := check(dbc, value); err != nil {
			return err
		}
	}
	*current = value
	return nil
}

func applyText(kind domainagg.Kind, field string, current *string, patch *string) error {
	if patch == nil {
		return nil
	}
	value, err := validation.RequireText(kind, field, *patch)
	if err != nil {
		return err
	}
	*current = value
	return nil
}

// applyRef re-resolves a patched foreign key and re-points both the id and
// the attached relation.
func applyRef[R any](dbc dbctx.Context, kind domainagg.Kind, field string, patch *uint, id *uint, rel **R, resolve func(dbctx.Context, uint) (*R, error)) error {
	if patch == nil {
		return nil
	}
	if err := validation.RequireID(kind, field, *patch); err != nil {
		return err
	}
	target, err := resolve(dbc, *patch)
	if err != nil {
		return err
	}
	*id = *patch
	*rel = target
	return nil
}
