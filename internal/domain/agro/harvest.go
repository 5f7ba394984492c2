package agro

import (
	"github.com/yungbote/agroregistry-backend/internal/domain/core"
	"github.com/yungbote/agroregistry-backend/internal/domain/user"
)

// Harvest is a named growing season, e.g. "Safra 2024".
type Harvest struct {
	core.Model
	Name        string     `gorm:"uniqueIndex;not null;column:name" json:"name"`
	CreatedByID uint       `gorm:"not null;index;column:created_by_id" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Harvest) TableName() string { return "harvests" }
