package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/agroregistry-backend/internal/domain"
)

// Valid identifiers for fixtures.
const (
	CPF1  = "52998224725"
	CPF2  = "11144477735"
	CNPJ1 = "11222333000181"
)

func create(tb testing.TB, gdb *gorm.DB, what string, row any) {
	tb.Helper()
	if err := gdb.Omit(clause.Associations).Create(row).Error; err != nil {
		tb.Fatalf("seed %s: %v", what, err)
	}
}

func stamp() (time.Time, time.Time) {
	now := time.Now().UTC()
	return now, now
}

func SeedUser(tb testing.TB, gdb *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{Name: "Ana", Email: email, Password: "$2a$10$fixturefixturefixturefixturefixturefixturefixture12"}
	u.CreatedAt, u.UpdatedAt = stamp()
	create(tb, gdb, "user", u)
	return u
}

func SeedState(tb testing.TB, gdb *gorm.DB, uf, name string) *types.State {
	tb.Helper()
	s := &types.State{UF: uf, Name: name}
	s.CreatedAt, s.UpdatedAt = stamp()
	create(tb, gdb, "state", s)
	return s
}

func SeedCity(tb testing.TB, gdb *gorm.DB, stateID uint, name string) *types.City {
	tb.Helper()
	c := &types.City{Name: name, StateID: stateID}
	c.CreatedAt, c.UpdatedAt = stamp()
	create(tb, gdb, "city", c)
	return c
}

func SeedProducer(tb testing.TB, gdb *gorm.DB, cityID, userID uint, cpfCnpj, name string) *types.Producer {
	tb.Helper()
	p := &types.Producer{CpfCnpj: cpfCnpj, Name: name, CityID: cityID, CreatedByID: userID}
	p.CreatedAt, p.UpdatedAt = stamp()
	create(tb, gdb, "producer", p)
	return p
}

func SeedRuralProperty(tb testing.TB, gdb *gorm.DB, producerID, cityID, userID uint, farm string, total, arable, vegetation float64) *types.RuralProperty {
	tb.Helper()
	rp := &types.RuralProperty{
		FarmName:       farm,
		TotalArea:      total,
		ArableArea:     arable,
		VegetationArea: vegetation,
		ProducerID:     producerID,
		CityID:         cityID,
		CreatedByID:    userID,
	}
	rp.CreatedAt, rp.UpdatedAt = stamp()
	create(tb, gdb, "rural property", rp)
	return rp
}

func SeedHarvest(tb testing.TB, gdb *gorm.DB, userID uint, name string) *types.Harvest {
	tb.Helper()
	h := &types.Harvest{Name: name, CreatedByID: userID}
	h.CreatedAt, h.UpdatedAt = stamp()
	create(tb, gdb, "harvest", h)
	return h
}

func SeedPlantedCulture(tb testing.TB, gdb *gorm.DB, userID uint, name string) *types.PlantedCulture {
	tb.Helper()
	pc := &types.PlantedCulture{Name: name, CreatedByID: userID}
	pc.CreatedAt, pc.UpdatedAt = stamp()
	create(tb, gdb, "planted culture", pc)
	return pc
}

func SeedCultivation(tb testing.TB, gdb *gorm.DB, propertyID, harvestID, cultureID, userID uint) *types.Cultivation {
	tb.Helper()
	cv := &types.Cultivation{
		RuralPropertyID:  propertyID,
		HarvestID:        harvestID,
		PlantedCultureID: cultureID,
		CreatedByID:      userID,
	}
	cv.CreatedAt, cv.UpdatedAt = stamp()
	create(tb, gdb, "cultivation", cv)
	return cv
}

// Registry is a small connected graph: one user, state, city, producer,
// property (100 = 60 + 30), harvest, culture and cultivation.
type Registry struct {
	User           *types.User
	State          *types.State
	City           *types.City
	Producer       *types.Producer
	RuralProperty  *types.RuralProperty
	Harvest        *types.Harvest
	PlantedCulture *types.PlantedCulture
	Cultivation    *types.Cultivation
}

func SeedRegistry(tb testing.TB, gdb *gorm.DB) Registry {
	tb.Helper()
	var r Registry
	r.User = SeedUser(tb, gdb, "ana@example.com")
	r.State = SeedState(tb, gdb, "SP", "Sao Paulo")
	r.City = SeedCity(tb, gdb, r.State.ID, "Campinas")
	r.Producer = SeedProducer(tb, gdb, r.City.ID, r.User.ID, CPF1, "Joao Silva")
	r.RuralProperty = SeedRuralProperty(tb, gdb, r.Producer.ID, r.City.ID, r.User.ID, "Fazenda Boa Vista", 100, 60, 30)
	r.Harvest = SeedHarvest(tb, gdb, r.User.ID, "Safra 2024")
	r.PlantedCulture = SeedPlantedCulture(tb, gdb, r.User.ID, "Soja")
	r.Cultivation = SeedCultivation(tb, gdb, r.RuralProperty.ID, r.Harvest.ID, r.PlantedCulture.ID, r.User.ID)
	return r
}
