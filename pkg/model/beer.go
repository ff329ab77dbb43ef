package model

import (
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/moderation"
)

type Beer struct {
	gorm.Model
	Name           string `gorm:"uniqueIndex"`
	NormalizedName string `gorm:"uniqueIndex"`
	Description    string
	ImageKey       string
	BreweryID      uint `gorm:"not null"`
	StyleID        *uint
	ABV            *float64
	IBU            *uint64
	ExternalID     *uint64
	ExternalSource *string
	ExternalRating *float64
	Status         moderation.Status `gorm:"type:varchar(16);index"`
	SubmittedByID  *uint

	Brewery     Brewery    `gorm:"constraint:OnUpdate:CASCADE;"`
	Style       *BeerStyle `gorm:"constraint:OnUpdate:CASCADE;"`
	SubmittedBy *User      `gorm:"foreignKey:SubmittedByID"`
}

// BeforeSave keeps the duplicate-guard column in sync with the display name
// and refuses status values outside the moderation enum.
func (b *Beer) BeforeSave(_ *gorm.DB) error {
	b.NormalizedName = moderation.NormalizeName(b.Name)

	_, err := moderation.ParseStatus(string(b.Status))

	return err
}
