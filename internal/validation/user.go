package validation

import (
	"strings"
	"sync"

	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
)

// UserCache keeps users resolved by id for the lifetime of the cache.
// Entries are only added; Forget exists for the user's own delete/update.
type UserCache interface {
	Get(id uint) (*types.User, bool)
	Put(u *types.User)
	Forget(id uint)
	Len() int
}

type userCache struct {
	mu    sync.RWMutex
	users map[uint]types.User
}

// NewUserCache returns an empty cache. Production builds one per process,
// tests one per test.
func NewUserCache() UserCache {
	return &userCache{users: map[uint]types.User{}}
}

func (c *userCache) Get(id uint) (*types.User, bool) {
	c.mu.RLock()
	u, ok := c.users[id]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return &u, true
}

func (c *userCache) Put(u *types.User) {
	if u == nil || u.ID == 0 {
		return
	}
	c.mu.Lock()
	c.users[u.ID] = *u
	c.mu.Unlock()
}

func (c *userCache) Forget(id uint) {
	c.mu.Lock()
	delete(c.users, id)
	c.mu.Unlock()
}

func (c *userCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}

type UserValidator struct {
	Reference[types.User]
	cache UserCache
}

func NewUserValidator(repo repos.UserRepo, cache UserCache) *UserValidator {
	if cache == nil {
		cache = NewUserCache()
	}
	return &UserValidator{
		Reference: NewReference[types.User](domainagg.KindUser, repo),
		cache:     cache,
	}
}

func (v *UserValidator) Cache() UserCache { return v.cache }

// Validate answers from the cache first and fills it on a store hit. Two
// concurrent misses on the same id both query the store; the later Put wins
// with an equal value.
func (v *UserValidator) Validate(dbc dbctx.Context, id uint) (*types.User, error) {
	if u, ok := v.cache.Get(id); ok {
		return u, nil
	}
	u, err := v.Reference.Validate(dbc, id)
	if err != nil {
		return nil, err
	}
	v.cache.Put(u)
	return u, nil
}

func (v *UserValidator) ValidateEmailUnique(dbc dbctx.Context, email string) error {
	return v.validateUnique(dbc, strings.TrimSpace(email))
}
