package agro

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/core"
	"github.com/yungbote/agroregistry-backend/internal/domain/geo"
	"github.com/yungbote/agroregistry-backend/internal/domain/user"
)

// Producer owns rural properties. CpfCnpj is stored digits-only.
type Producer struct {
	core.Model
	CpfCnpj     string     `gorm:"uniqueIndex;not null;column:cpf_cnpj" json:"cpf_cnpj"`
	Name        string     `gorm:"not null;column:name" json:"name"`
	CityID      uint       `gorm:"not null;index;column:city_id" json:"city_id"`
	City        *geo.City  `gorm:"foreignKey:CityID" json:"city,omitempty"`
	CreatedByID uint       `gorm:"not null;index;column:created_by_id" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Producer) TableName() string { return "producers" }
