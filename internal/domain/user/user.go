package user

import "github.com/yungbote/agroregistry-backend/internal/domain/core"

type User struct {
	core.Model
	Name     string `gorm:"not null;column:name" json:"name"`
	Email    string `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password string `gorm:"not null;column:password" json:"-"`
}

func (User) TableName() string { return "users" }
