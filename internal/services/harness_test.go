package services

import (
	"context"
	"strconv"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates/testutil"
	repotest "github.com/yungbote/agroregistry-backend/internal/data/repos/testutil"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type harness struct {
	db    *gorm.DB
	reg   Registry
	hooks *testutil.HooksRecorder
	cache validation.UserCache
	actor *types.User
	ctx   context.Context
}

// newHarness builds the registry over a fresh store with one acting user.
func newHarness(t *testing.T) *harness {
	t.Helper()
	db := repotest.DB(t)
	hooks := &testutil.HooksRecorder{}
	cache := validation.NewUserCache()
	reg := NewRegistry(db, repotest.Logger(t), RegistryConfig{
		Hooks:     hooks,
		UserCache: cache,
		HashCost:  bcrypt.MinCost,
	})
	return &harness{
		db:    db,
		reg:   reg,
		hooks: hooks,
		cache: cache,
		actor: repotest.SeedUser(t, db, "actor@example.com"),
		ctx:   context.Background(),
	}
}

func (h *harness) dbc() dbctx.Context { return dbctx.Context{Ctx: h.ctx} }

func (h *harness) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := h.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (h *harness) state(t *testing.T, uf, name string) *types.State {
	t.Helper()
	s, err := h.reg.States.Create(h.ctx, StateInput{UF: uf, Name: name}, h.actor.ID)
	if err != nil {
		t.Fatalf("States.Create: %v", err)
	}
	return s
}

func (h *harness) city(t *testing.T, stateID uint, name string) *types.City {
	t.Helper()
	c, err := h.reg.Cities.Create(h.ctx, CityInput{Name: name, StateID: stateID}, h.actor.ID)
	if err != nil {
		t.Fatalf("Cities.Create: %v", err)
	}
	return c
}

func (h *harness) producer(t *testing.T, cityID uint, cpfCnpj string) *types.Producer {
	t.Helper()
	p, err := h.reg.Producers.Create(h.ctx, ProducerInput{CpfCnpj: cpfCnpj, Name: "Joao Silva", CityID: cityID}, h.actor.ID)
	if err != nil {
		t.Fatalf("Producers.Create: %v", err)
	}
	return p
}

func (h *harness) property(t *testing.T, producerID, cityID uint, total, arable, vegetation float64) *types.RuralProperty {
	t.Helper()
	rp, err := h.reg.RuralProperties.Create(h.ctx, RuralPropertyInput{
		FarmName:       "Fazenda",
		TotalArea:      types.Area(total),
		ArableArea:     types.Area(arable),
		VegetationArea: types.Area(vegetation),
		ProducerID:     producerID,
		CityID:         cityID,
	}, h.actor.ID)
	if err != nil {
		t.Fatalf("RuralProperties.Create: %v", err)
	}
	return rp
}

func (h *harness) harvest(t *testing.T, name string) *types.Harvest {
	t.Helper()
	hv, err := h.reg.Harvests.Create(h.ctx, NameInput{Name: name}, h.actor.ID)
	if err != nil {
		t.Fatalf("Harvests.Create: %v", err)
	}
	return hv
}

func (h *harness) culture(t *testing.T, name string) *types.PlantedCulture {
	t.Helper()
	pc, err := h.reg.PlantedCultures.Create(h.ctx, NameInput{Name: name}, h.actor.ID)
	if err != nil {
		t.Fatalf("PlantedCultures.Create: %v", err)
	}
	return pc
}

func (h *harness) cultivation(t *testing.T, propertyID, harvestID, cultureID uint) *types.Cultivation {
	t.Helper()
	cv, err := h.reg.Cultivations.Create(h.ctx, CultivationInput{
		RuralPropertyID:  propertyID,
		HarvestID:        harvestID,
		PlantedCultureID: cultureID,
	}, h.actor.ID)
	if err != nil {
		t.Fatalf("Cultivations.Create: %v", err)
	}
	return cv
}

func ptr[T any](v T) *T { return &v }

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
