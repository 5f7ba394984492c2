package user

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/repos/table"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

type UserRepo interface {
	table.TableRepo[types.User]
	GetByEmail(dbc dbctx.Context, email string) (*types.User, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
}

type userRepo struct {
	table.TableRepo[types.User]
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{
		TableRepo: table.New[types.User](db, baseLog, "UserRepo"),
		db:        db,
	}
}

func (r *userRepo) GetByEmail(dbc dbctx.Context, email string) (*types.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var out []*types.User
	if err := dbc.DB(r.db).
		Where("email = ?", email).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *userRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	n, err := r.CountWhere(dbc, "email", strings.TrimSpace(email))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
