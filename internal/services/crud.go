package services

import (
	"context"
	"time"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type record interface {
	GetID() uint
	StampCreated(now time.Time)
	StampUpdated(now time.Time)
}

type recordPtr[T any] interface {
	*T
	record
}

// CRUD is the contract every registry service exposes.
type CRUD[T any, C any, P any] interface {
	Create(ctx context.Context, in C, actingUserID uint) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	FindOne(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, patch P) (*T, error)
	Remove(ctx context.Context, id uint) error
}

// crudSpec is what one entity kind plugs into validatedCRUD.
type crudSpec[T any, C any, P any] struct {
	// build validates in, resolves its references and returns the new row.
	build func(dbc dbctx.Context, in C) (*T, error)
	// own records the acting user on owned kinds.
	own func(row *T, actor *types.User)
	// apply validates the present fields of patch and merges them into row.
	apply func(dbc dbctx.Context, row *T, patch P) error
	// invariants run on the final row, after build or apply.
	invariants func(row *T) error
	// uniqueValue reports the row's value for the kind's unique column.
	uniqueValue func(row *T) string
	// remove replaces the plain delete.
	remove func(dbc dbctx.Context, id uint) error
	// committed runs once an update or remove of id has committed.
	committed func(id uint)
}

type validatedCRUD[T any, PT recordPtr[T], C any, P any] struct {
	contract domainagg.Contract
	deps     aggregates.BaseDeps
	repo     repos.TableRepo[T]
	ref      validation.Reference[T]
	users    *validation.UserValidator
	spec     crudSpec[T, C, P]
	now      func() time.Time
	log      *logger.Logger
}

func newValidatedCRUD[T any, PT recordPtr[T], C any, P any](
	kind domainagg.Kind,
	deps aggregates.BaseDeps,
	repo repos.TableRepo[T],
	users *validation.UserValidator,
	spec crudSpec[T, C, P],
) *validatedCRUD[T, PT, C, P] {
	contract := domainagg.ContractFor(kind)
	return &validatedCRUD[T, PT, C, P]{
		contract: contract,
		deps:     deps,
		repo:     repo,
		ref:      validation.NewReference[T](kind, repo),
		users:    users,
		spec:     spec,
		now:      func() time.Time { return time.Now().UTC() },
		log:      serviceLog(deps, kind),
	}
}

func serviceLog(deps aggregates.BaseDeps, kind domainagg.Kind) *logger.Logger {
	if deps.Log == nil {
		return logger.Nop()
	}
	return deps.Log.With("service", string(kind)+"Service")
}

// Create validates in, resolves the acting user and persists the row in one
// transaction. Owned kinds require an acting user; the others resolve one
// only when given.
func (s *validatedCRUD[T, PT, C, P]) Create(ctx context.Context, in C, actingUserID uint) (*T, error) {
	op := s.contract.Op("create")
	var out *T
	err := aggregates.ExecuteWrite(ctx, s.deps, op, func(dbc dbctx.Context) error {
		row, err := s.spec.build(dbc, in)
		if err != nil {
			return err
		}
		if s.spec.invariants != nil {
			if err := s.spec.invariants(row); err != nil {
				return err
			}
		}
		if s.contract.Owned || actingUserID != 0 {
			actor, err := s.users.Validate(dbc, actingUserID)
			if err != nil {
				return err
			}
			if s.spec.own != nil {
				s.spec.own(row, actor)
			}
		}
		PT(row).StampCreated(s.now())
		if err := s.repo.Create(dbc, row); err != nil {
			return s.storeError(err, row)
		}
		out, err = s.reload(dbc, PT(row).GetID())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("created", "op", op, "id", PT(out).GetID())
	return out, nil
}

func (s *validatedCRUD[T, PT, C, P]) FindAll(ctx context.Context) ([]*T, error) {
	rows, err := s.repo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, aggregates.MapError(s.contract.Op("find_all"), err)
	}
	return rows, nil
}

func (s *validatedCRUD[T, PT, C, P]) FindOne(ctx context.Context, id uint) (*T, error) {
	row, err := s.ref.Validate(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(s.contract.Op("find_one"), err)
	}
	return row, nil
}

// Update merges the present fields of patch into the stored row. Invariants
// run against the merged row, so stored values stand in for absent fields.
func (s *validatedCRUD[T, PT, C, P]) Update(ctx context.Context, id uint, patch P) (*T, error) {
	op := s.contract.Op("update")
	var out *T
	err := aggregates.ExecuteWrite(ctx, s.deps, op, func(dbc dbctx.Context) error {
		row, err := s.ref.Validate(dbc, id)
		if err != nil {
			return err
		}
		if err := s.spec.apply(dbc, row, patch); err != nil {
			return err
		}
		if s.spec.invariants != nil {
			if err := s.spec.invariants(row); err != nil {
				return err
			}
		}
		PT(row).StampUpdated(s.now())
		if err := s.repo.Save(dbc, row); err != nil {
			return s.storeError(err, row)
		}
		out, err = s.reload(dbc, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.afterCommit(id)
	s.log.Debug("updated", "op", op, "id", id)
	return out, nil
}

func (s *validatedCRUD[T, PT, C, P]) Remove(ctx context.Context, id uint) error {
	op := s.contract.Op("remove")
	err := aggregates.ExecuteWrite(ctx, s.deps, op, func(dbc dbctx.Context) error {
		if s.spec.remove != nil {
			return s.spec.remove(dbc, id)
		}
		if _, err := s.ref.Validate(dbc, id); err != nil {
			return err
		}
		n, err := s.repo.DeleteByID(dbc, id)
		if err != nil {
			return aggregates.RejectReferenced(err, s.contract.Kind, id)
		}
		return aggregates.RequireRowsAffected(n, s.contract.Kind, id)
	})
	if err != nil {
		return err
	}
	s.afterCommit(id)
	s.log.Debug("removed", "op", op, "id", id)
	return nil
}

func (s *validatedCRUD[T, PT, C, P]) afterCommit(id uint) {
	if s.spec.committed != nil {
		s.spec.committed(id)
	}
}

func (s *validatedCRUD[T, PT, C, P]) reload(dbc dbctx.Context, id uint) (*T, error) {
	row, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	return aggregates.RequireFound(row, s.contract.Kind, id)
}

// storeError turns a constraint the pre-checks raced past into the same
// error the validators would have returned.
func (s *validatedCRUD[T, PT, C, P]) storeError(err error, row *T) error {
	if aggregates.IsUniqueViolation(err) && s.contract.UniqueField != "" && s.spec.uniqueValue != nil {
		return domainagg.DuplicateName(s.contract.Kind, s.contract.UniqueField, s.spec.uniqueValue(row))
	}
	return err
}
