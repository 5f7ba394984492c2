package agro

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/core"
	"github.com/yungbote/agroregistry-backend/internal/domain/user"
)

// PlantedCulture is a crop type, e.g. soy or corn.
type PlantedCulture struct {
	core.Model
	Name        string     `gorm:"uniqueIndex;not null;column:name" json:"name"`
	CreatedByID uint       `gorm:"not null;index;column:created_by_id" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (PlantedCulture) TableName() string { return "planted_cultures" }
