package model

import "gorm.io/gorm"

// Review is a user-authored rating of a beer. Reviews are not moderated;
// they belong to their author and only the author may delete them.
type Review struct {
	gorm.Model
	BeerID   uint `gorm:"not null;index"`
	AuthorID uint `gorm:"not null;index"`
	Rating   int  `gorm:"not null"`
	Body     string

	Beer   Beer `gorm:"constraint:OnDelete:CASCADE;"`
	Author User `gorm:"foreignKey:AuthorID"`
}

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_favorite_unique"`
	BeerID uint `gorm:"not null;uniqueIndex:idx_favorite_unique"`

	Beer Beer `gorm:"constraint:OnDelete:CASCADE;"`
}
