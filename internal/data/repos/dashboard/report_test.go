package dashboard

import (
	"testing"

	"github.com/yungbote/agroregistry-backend/internal/data/repos/testutil"
)

func TestReportRepoEmpty(t *testing.T) {
	db := testutil.DB(t)
	dbc := testutil.Ctx(nil)
	repo := NewReportRepo(db, testutil.Logger(t))

	n, err := repo.CountRuralProperties(dbc)
	if err != nil || n != 0 {
		t.Fatalf("CountRuralProperties: n=%d err=%v", n, err)
	}
	sums, err := repo.SumAreas(dbc)
	if err != nil {
		t.Fatalf("SumAreas: %v", err)
	}
	if sums.TotalArea != 0 || sums.ArableArea != 0 || sums.VegetationArea != 0 {
		t.Fatalf("SumAreas: expected zeros, got %+v", sums)
	}
	byState, err := repo.CountRuralPropertiesByState(dbc)
	if err != nil || byState == nil || len(byState) != 0 {
		t.Fatalf("CountRuralPropertiesByState: items=%+v err=%v", byState, err)
	}
	byCulture, err := repo.CountCultivationsByPlantedCulture(dbc)
	if err != nil || byCulture == nil || len(byCulture) != 0 {
		t.Fatalf("CountCultivationsByPlantedCulture: items=%+v err=%v", byCulture, err)
	}
}

func TestReportRepoRollups(t *testing.T) {
	db := testutil.DB(t)
	dbc := testutil.Ctx(nil)
	repo := NewReportRepo(db, testutil.Logger(t))

	r := testutil.SeedRegistry(t, db)
	mg := testutil.SeedState(t, db, "MG", "Minas Gerais")
	bh := testutil.SeedCity(t, db, mg.ID, "Belo Horizonte")
	rp2 := testutil.SeedRuralProperty(t, db, r.Producer.ID, bh.ID, r.User.ID, "Sitio Alto", 50.5, 20, 10.25)
	rp3 := testutil.SeedRuralProperty(t, db, r.Producer.ID, r.City.ID, r.User.ID, "Chacara", 10, 5, 5)
	milho := testutil.SeedPlantedCulture(t, db, r.User.ID, "Milho")
	testutil.SeedCultivation(t, db, rp2.ID, r.Harvest.ID, r.PlantedCulture.ID, r.User.ID)
	testutil.SeedCultivation(t, db, rp3.ID, r.Harvest.ID, milho.ID, r.User.ID)

	n, err := repo.CountRuralProperties(dbc)
	if err != nil || n != 3 {
		t.Fatalf("CountRuralProperties: n=%d err=%v", n, err)
	}
	sums, err := repo.SumAreas(dbc)
	if err != nil {
		t.Fatalf("SumAreas: %v", err)
	}
	if sums.TotalArea != 160.5 || sums.ArableArea != 85 || sums.VegetationArea != 45.25 {
		t.Fatalf("SumAreas: unexpected %+v", sums)
	}

	byState, err := repo.CountRuralPropertiesByState(dbc)
	if err != nil {
		t.Fatalf("CountRuralPropertiesByState: %v", err)
	}
	if len(byState) != 2 ||
		byState[0].Label != "Minas Gerais" || byState[0].Value != 1 ||
		byState[1].Label != "Sao Paulo" || byState[1].Value != 2 {
		t.Fatalf("CountRuralPropertiesByState: unexpected %+v", byState)
	}

	byCulture, err := repo.CountCultivationsByPlantedCulture(dbc)
	if err != nil {
		t.Fatalf("CountCultivationsByPlantedCulture: %v", err)
	}
	if len(byCulture) != 2 ||
		byCulture[0].Label != "Milho" || byCulture[0].Value != 1 ||
		byCulture[1].Label != "Soja" || byCulture[1].Value != 2 {
		t.Fatalf("CountCultivationsByPlantedCulture: unexpected %+v", byCulture)
	}
}
