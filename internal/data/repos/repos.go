package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/repos/agro"
	"github.com/yungbote/agroregistry-backend/internal/data/repos/dashboard"
	"github.com/yungbote/agroregistry-backend/internal/data/repos/geo"
	"github.com/yungbote/agroregistry-backend/internal/data/repos/table"
	"github.com/yungbote/agroregistry-backend/internal/data/repos/user"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

type TableRepo[T any] = table.TableRepo[T]

type UserRepo = user.UserRepo

type StateRepo = geo.StateRepo
type CityRepo = geo.CityRepo

type ProducerRepo = agro.ProducerRepo
type RuralPropertyRepo = agro.RuralPropertyRepo
type HarvestRepo = agro.HarvestRepo
type PlantedCultureRepo = agro.PlantedCultureRepo
type CultivationRepo = agro.CultivationRepo

type ReportRepo = dashboard.ReportRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewStateRepo(db *gorm.DB, baseLog *logger.Logger) StateRepo { return geo.NewStateRepo(db, baseLog) }
func NewCityRepo(db *gorm.DB, baseLog *logger.Logger) CityRepo   { return geo.NewCityRepo(db, baseLog) }

func NewProducerRepo(db *gorm.DB, baseLog *logger.Logger) ProducerRepo {
	return agro.NewProducerRepo(db, baseLog)
}
func NewRuralPropertyRepo(db *gorm.DB, baseLog *logger.Logger) RuralPropertyRepo {
	return agro.NewRuralPropertyRepo(db, baseLog)
}
func NewHarvestRepo(db *gorm.DB, baseLog *logger.Logger) HarvestRepo {
	return agro.NewHarvestRepo(db, baseLog)
}
func NewPlantedCultureRepo(db *gorm.DB, baseLog *logger.Logger) PlantedCultureRepo {
	return agro.NewPlantedCultureRepo(db, baseLog)
}
func NewCultivationRepo(db *gorm.DB, baseLog *logger.Logger) CultivationRepo {
	return agro.NewCultivationRepo(db, baseLog)
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
	return dashboard.NewReportRepo(db, baseLog)
}
