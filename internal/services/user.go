package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserService = CRUD[types.User, UserInput, UserPatch]

// NewUserService stores passwords as bcrypt hashes of the given cost. Updates
// and removals drop the user from the validator cache once committed.
func NewUserService(deps aggregates.BaseDeps, repo repos.UserRepo, users *validation.UserValidator, hashCost int) UserService {
	kind := domainagg.KindUser
	if hashCost < bcrypt.MinCost {
		hashCost = bcrypt.DefaultCost
	}
	hash := func(raw string) (string, error) {
		if err := validation.RequirePassword(raw); err != nil {
			return "", err
		}
		b, err := bcrypt.GenerateFromPassword([]byte(raw), hashCost)
		if err != nil {
			return "", domainagg.Invalid(kind, "password", err.Error())
		}
		return string(b), nil
	}
	return newValidatedCRUD[types.User, *types.User, UserInput, UserPatch](kind, deps, repo, users, crudSpec[types.User, UserInput, UserPatch]{
		build: func(dbc dbctx.Context, in UserInput) (*types.User, error) {
			name, err := validation.RequireText(kind, "name", in.Name)
			if err != nil {
				return nil, err
			}
			email, err := validation.NormalizeEmail(in.Email)
			if err != nil {
				return nil, err
			}
			if err := users.ValidateEmailUnique(dbc, email); err != nil {
				return nil, err
			}
			hashed, err := hash(in.Password)
			if err != nil {
				return nil, err
			}
			return &types.User{Name: name, Email: email, Password: hashed}, nil
		},
		apply: func(dbc dbctx.Context, row *types.User, patch UserPatch) error {
			if err := applyText(kind, "name", &row.Name, patch.Name); err != nil {
				return err
			}
			if patch.Email != nil {
				email, err := validation.NormalizeEmail(*patch.Email)
				if err != nil {
					return err
				}
				if email != row.Email {
					if err := users.ValidateEmailUnique(dbc, email); err != nil {
						return err
					}
				}
				row.Email = email
			}
			if patch.Password != nil {
				hashed, err := hash(*patch.Password)
				if err != nil {
					return err
				}
				row.Password = hashed
			}
			return nil
		},
		uniqueValue: func(row *types.User) string { return row.Email },
		remove: func(dbc dbctx.Context, id uint) error {
			if _, err := users.Reference.Validate(dbc, id); err != nil {
				return err
			}
			n, err := repo.DeleteByID(dbc, id)
			if err != nil {
				return aggregates.RejectReferenced(err, kind, id)
			}
			return aggregates.RequireRowsAffected(n, kind, id)
		},
		// Evict only after commit; a rolled-back write leaves the cache current.
		committed: func(id uint) { users.Cache().Forget(id) },
	})
}
