package domain

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/agro"
	"github.com/yungbote/agroregistry-backend/internal/domain/dashboard"
	"github.com/yungbote/agroregistry-backend/internal/domain/geo"
	"github.com/yungbote/agroregistry-backend/internal/domain/user"
)

type User = user.User

type State = geo.State
type City = geo.City

type Producer = agro.Producer
type RuralProperty = agro.RuralProperty
type Harvest = agro.Harvest
type PlantedCulture = agro.PlantedCulture
type Cultivation = agro.Cultivation
type Area = agro.Area

type Report = dashboard.Report
type ChartItem = dashboard.ChartItem

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&User{},
		&State{},
		&City{},
		&Producer{},
		&RuralProperty{},
		&Harvest{},
		&PlantedCulture{},
		&Cultivation{},
	}
}
