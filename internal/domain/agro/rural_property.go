package agro

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/core"
	"github.com/yungbote/agroregistry-backend/internal/domain/geo"
	"github.com/yungbote/agroregistry-backend/internal/domain/user"
)

type RuralProperty struct {
	core.Model
	FarmName       string     `gorm:"not null;column:farm_name" json:"farm_name"`
	TotalArea      float64    `gorm:"type:numeric(10,2);not null;column:total_area" json:"total_area"`
	ArableArea     float64    `gorm:"type:numeric(10,2);not null;column:arable_area" json:"arable_area"`
	VegetationArea float64    `gorm:"type:numeric(10,2);not null;column:vegetation_area" json:"vegetation_area"`
	ProducerID     uint       `gorm:"not null;index;column:producer_id" json:"producer_id"`
	Producer       *Producer  `gorm:"foreignKey:ProducerID" json:"producer,omitempty"`
	CityID         uint       `gorm:"not null;index;column:city_id" json:"city_id"`
	City           *geo.City  `gorm:"foreignKey:CityID" json:"city,omitempty"`
	CreatedByID    uint       `gorm:"not null;index;column:created_by_id" json:"created_by_id"`
	CreatedBy      *user.User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (RuralProperty) TableName() string { return "rural_properties" }
