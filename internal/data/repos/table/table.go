package table

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

// TableRepo is the store contract every registry entity shares.
type TableRepo[T any] interface {
	// GetByID returns nil, nil when no row has id.
	GetByID(dbc dbctx.Context, id uint) (*T, error)
	List(dbc dbctx.Context) ([]*T, error)
	CountWhere(dbc dbctx.Context, column string, value any) (int64, error)
	Create(dbc dbctx.Context, row *T) error
	Save(dbc dbctx.Context, row *T) error
	DeleteByID(dbc dbctx.Context, id uint) (int64, error)
}

type tableRepo[T any] struct {
	db       *gorm.DB
	log      *logger.Logger
	preloads []string
}

// New returns a TableRepo whose reads preload the given relations.
func New[T any](db *gorm.DB, baseLog *logger.Logger, name string, preloads ...string) TableRepo[T] {
	return &tableRepo[T]{
		db:       db,
		log:      baseLog.With("repo", name),
		preloads: preloads,
	}
}

func (r *tableRepo[T]) withPreloads(q *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *tableRepo[T]) GetByID(dbc dbctx.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, nil
	}
	var out []*T
	if err := r.withPreloads(dbc.DB(r.db)).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *tableRepo[T]) List(dbc dbctx.Context) ([]*T, error) {
	out := []*T{}
	if err := r.withPreloads(dbc.DB(r.db)).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tableRepo[T]) CountWhere(dbc dbctx.Context, column string, value any) (int64, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return 0, errors.New("CountWhere requires a column")
	}
	var n int64
	err := dbc.DB(r.db).
		Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Count(&n).Error
	return n, err
}

func (r *tableRepo[T]) Create(dbc dbctx.Context, row *T) error {
	if row == nil {
		return errors.New("Create requires a row")
	}
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *tableRepo[T]) Save(dbc dbctx.Context, row *T) error {
	if row == nil {
		return errors.New("Save requires a row")
	}
	return dbc.DB(r.db).Omit(clause.Associations).Save(row).Error
}

func (r *tableRepo[T]) DeleteByID(dbc dbctx.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		r.log.Debug("delete failed", "id", id, "error", res.Error)
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
