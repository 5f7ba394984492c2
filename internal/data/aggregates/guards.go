package aggregates

import (
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

// RequireFound converts a nil lookup result into NotFound(kind, id).
func RequireFound[T any](row *T, kind domainagg.Kind, id uint) (*T, error) {
	if row == nil {
		return nil, domainagg.NotFound(kind, id)
	}
	return row, nil
}

// RequireRowsAffected converts a delete or update that touched nothing into
// NotFound(kind, id). The row disappeared between lookup and write.
func RequireRowsAffected(n int64, kind domainagg.Kind, id uint) error {
	if n > 0 {
		return nil
	}
	return domainagg.NotFound(kind, id)
}

// RejectUnique maps a store-level unique violation into DuplicateName. Any
// other error is returned unchanged.
func RejectUnique(err error, kind domainagg.Kind, field, value string) error {
	if err == nil || !IsUniqueViolation(err) {
		return err
	}
	return domainagg.DuplicateName(kind, field, value)
}

// RejectReferenced maps a foreign-key violation raised by a delete into a
// conflict naming the row that is still referenced.
func RejectReferenced(err error, kind domainagg.Kind, id uint) error {
	if err == nil || !IsForeignKeyViolation(err) {
		return err
	}
	return domainagg.StillReferenced(kind, id, err)
}
