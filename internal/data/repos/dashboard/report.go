package dashboard

import (
	"gorm.io/gorm"

	types "github.com/yungbote/agroregistry-backend/internal/domain"
	domaindash "github.com/yungbote/agroregistry-backend/internal/domain/dashboard"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

// ReportRepo runs the read-only rollups behind the dashboard.
type ReportRepo interface {
	CountRuralProperties(dbc dbctx.Context) (int64, error)
	SumAreas(dbc dbctx.Context) (domaindash.AreaSums, error)
	CountRuralPropertiesByState(dbc dbctx.Context) ([]domaindash.ChartItem, error)
	CountCultivationsByPlantedCulture(dbc dbctx.Context) ([]domaindash.ChartItem, error)
}

type reportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
	return &reportRepo{db: db, log: baseLog.With("repo", "ReportRepo")}
}

func (r *reportRepo) CountRuralProperties(dbc dbctx.Context) (int64, error) {
	var n int64
	err := dbc.DB(r.db).Model(&types.RuralProperty{}).Count(&n).Error
	return n, err
}

func (r *reportRepo) SumAreas(dbc dbctx.Context) (domaindash.AreaSums, error) {
	var out domaindash.AreaSums
	err := dbc.DB(r.db).
		Model(&types.RuralProperty{}).
		Select(
			"CAST(COALESCE(SUM(total_area), 0) AS DOUBLE PRECISION) AS total_area, " +
				"CAST(COALESCE(SUM(arable_area), 0) AS DOUBLE PRECISION) AS arable_area, " +
				"CAST(COALESCE(SUM(vegetation_area), 0) AS DOUBLE PRECISION) AS vegetation_area",
		).
		Scan(&out).Error
	return out, err
}

// CountRuralPropertiesByState counts properties per state of their city.
func (r *reportRepo) CountRuralPropertiesByState(dbc dbctx.Context) ([]domaindash.ChartItem, error) {
	out := []domaindash.ChartItem{}
	err := dbc.DB(r.db).
		Table("rural_properties AS rp").
		Select("s.name AS label, COUNT(rp.id) AS value").
		Joins("JOIN cities AS c ON c.id = rp.city_id").
		Joins("JOIN states AS s ON s.id = c.state_id").
		Group("s.name").
		Order("s.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reportRepo) CountCultivationsByPlantedCulture(dbc dbctx.Context) ([]domaindash.ChartItem, error) {
	out := []domaindash.ChartItem{}
	err := dbc.DB(r.db).
		Table("cultivations AS cv").
		Select("pc.name AS label, COUNT(cv.id) AS value").
		Joins("JOIN planted_cultures AS pc ON pc.id = cv.planted_culture_id").
		Group("pc.name").
		Order("pc.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
