package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/moderation"
)

// User mirrors an identity issued by the hosted auth provider. Rows are
// provisioned lazily on a user's first authenticated request.
type User struct {
	gorm.Model
	UUID     uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4()"`
	Username string
	Email    string          `gorm:"uniqueIndex"`
	Role     moderation.Role `gorm:"type:varchar(16);default:'user'"`
}

func (u *User) IsAdmin() bool {
	return u.Role == moderation.RoleAdmin
}
