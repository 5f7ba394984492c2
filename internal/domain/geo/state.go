package geo

import "github.com/yungbote/agroregistry-backend/internal/domain/core"

type State struct {
	core.Model
	UF   string `gorm:"not null;size:2;column:uf" json:"uf"`
	Name string `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (State) TableName() string { return "states" }
