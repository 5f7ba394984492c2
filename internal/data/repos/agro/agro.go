package agro

import (
	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/repos/table"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

type ProducerRepo = table.TableRepo[types.Producer]
type RuralPropertyRepo = table.TableRepo[types.RuralProperty]
type HarvestRepo = table.TableRepo[types.Harvest]
type PlantedCultureRepo = table.TableRepo[types.PlantedCulture]
type CultivationRepo = table.TableRepo[types.Cultivation]

func NewProducerRepo(db *gorm.DB, baseLog *logger.Logger) ProducerRepo {
	return table.New[types.Producer](db, baseLog, "ProducerRepo", "City", "CreatedBy")
}

func NewRuralPropertyRepo(db *gorm.DB, baseLog *logger.Logger) RuralPropertyRepo {
	return table.New[types.RuralProperty](db, baseLog, "RuralPropertyRepo", "Producer", "City", "CreatedBy")
}

func NewHarvestRepo(db *gorm.DB, baseLog *logger.Logger) HarvestRepo {
	return table.New[types.Harvest](db, baseLog, "HarvestRepo", "CreatedBy")
}

func NewPlantedCultureRepo(db *gorm.DB, baseLog *logger.Logger) PlantedCultureRepo {
	return table.New[types.PlantedCulture](db, baseLog, "PlantedCultureRepo", "CreatedBy")
}

func NewCultivationRepo(db *gorm.DB, baseLog *logger.Logger) CultivationRepo {
	return table.New[types.Cultivation](db, baseLog, "CultivationRepo", "RuralProperty", "Harvest", "PlantedCulture", "CreatedBy")
}
