package model

import (
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/moderation"
)

type Brewery struct {
	gorm.Model
	Name           string `gorm:"uniqueIndex"`
	NormalizedName string `gorm:"uniqueIndex"`
	Description    string
	ImageKey       string
	PrefectureID   *uint
	ExternalID     *uint64
	ExternalSource *string
	ExternalRating *float64
	Status         moderation.Status `gorm:"type:varchar(16);index"`

	Prefecture *Prefecture
}

func (b *Brewery) BeforeSave(_ *gorm.DB) error {
	b.NormalizedName = moderation.NormalizeName(b.Name)

	_, err := moderation.ParseStatus(string(b.Status))

	return err
}

// Prefecture is a fixed lookup table; breweries reference it optionally.
type Prefecture struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}
