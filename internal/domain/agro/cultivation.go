package agro

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/core"
	"github.com/yungbote/agroregistry-backend/internal/domain/user"
)

// Cultivation links one rural property, one harvest and one planted culture.
type Cultivation struct {
	core.Model
	RuralPropertyID  uint            `gorm:"not null;index;column:rural_property_id" json:"rural_property_id"`
	RuralProperty    *RuralProperty  `gorm:"foreignKey:RuralPropertyID" json:"rural_property,omitempty"`
	HarvestID        uint            `gorm:"not null;index;column:harvest_id" json:"harvest_id"`
	Harvest          *Harvest        `gorm:"foreignKey:HarvestID" json:"harvest,omitempty"`
	PlantedCultureID uint            `gorm:"not null;index;column:planted_culture_id" json:"planted_culture_id"`
	PlantedCulture   *PlantedCulture `gorm:"foreignKey:PlantedCultureID" json:"planted_culture,omitempty"`
	CreatedByID      uint            `gorm:"not null;index;column:created_by_id" json:"created_by_id"`
	CreatedBy        *user.User      `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Cultivation) TableName() string { return "cultivations" }
