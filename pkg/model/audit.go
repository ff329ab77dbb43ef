package model

import (
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/moderation"
)

// Entity names the moderated table a status transition belongs to.
type Entity string

const (
	EntityBeer         Entity = "beer"
	EntityBrewery      Entity = "brewery"
	EntityStyle        Entity = "beer_style"
	EntityStyleRequest Entity = "beer_style_request"
)

// StatusTransition is the append-only audit record of a moderation action.
// One row is written in the same transaction as every status mutation.
type StatusTransition struct {
	gorm.Model
	EntityType Entity            `gorm:"type:varchar(32);index:idx_transition_entity"`
	EntityID   uint              `gorm:"index:idx_transition_entity"`
	FromStatus moderation.Status `gorm:"type:varchar(16)"`
	ToStatus   moderation.Status `gorm:"type:varchar(16)"`
	ActorID    uint

	Actor User `gorm:"foreignKey:ActorID"`
}
