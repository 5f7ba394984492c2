package geo

import "github.com/yungbote/agroregistry-backend/internal/domain/core"

// City names are unique across the whole registry, not per state.
type City struct {
	core.Model
	Name    string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	StateID uint   `gorm:"not null;index;column:state_id" json:"state_id"`
	State   *State `gorm:"foreignKey:StateID" json:"state,omitempty"`
}

func (City) TableName() string { return "cities" }
