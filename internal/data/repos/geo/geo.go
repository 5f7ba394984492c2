package geo

import (
	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/repos/table"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

type StateRepo = table.TableRepo[types.State]
type CityRepo = table.TableRepo[types.City]

func NewStateRepo(db *gorm.DB, baseLog *logger.Logger) StateRepo {
	return table.New[types.State](db, baseLog, "StateRepo")
}

func NewCityRepo(db *gorm.DB, baseLog *logger.Logger) CityRepo {
	return table.New[types.City](db, baseLog, "CityRepo", "State")
}
