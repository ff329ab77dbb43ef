package model

import (
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/moderation"
)

// BeerStyle is a canonical style entry. Flavor scales are 1-5 integers; the
// spec ranges describe typical examples of the style, not hard limits.
type BeerStyle struct {
	gorm.Model
	Slug           string `gorm:"uniqueIndex"`
	Name           string `gorm:"uniqueIndex"`
	NormalizedName string `gorm:"uniqueIndex"`
	Description    string
	Status         moderation.Status `gorm:"type:varchar(16);index"`

	Bitterness int
	Sweetness  int
	Sourness   int
	Body       int
	Aroma      int

	ABVMin         *float64
	ABVMax         *float64
	IBUMin         *uint64
	IBUMax         *uint64
	SRMMin         *float64
	SRMMax         *float64
	ServingTempMin *float64
	ServingTempMax *float64

	OtherNames []BeerStyleOtherName `gorm:"foreignKey:StyleID;constraint:OnDelete:CASCADE;"`
	Relations  []BeerStyleRelation  `gorm:"foreignKey:StyleID;constraint:OnDelete:CASCADE;"`
}

func (s *BeerStyle) BeforeSave(_ *gorm.DB) error {
	s.NormalizedName = moderation.NormalizeName(s.Name)
	if s.Slug == "" {
		s.Slug = moderation.Slugify(s.Name)
	}

	_, err := moderation.ParseStatus(string(s.Status))

	return err
}

// BeerStyleOtherName is an alternate search term for a style. The set is
// replaced wholesale on every style edit, never diffed.
type BeerStyleOtherName struct {
	gorm.Model
	StyleID        uint `gorm:"not null;index"`
	Name           string
	NormalizedName string `gorm:"index"`
}

func (o *BeerStyleOtherName) BeforeSave(_ *gorm.DB) error {
	o.NormalizedName = moderation.NormalizeName(o.Name)

	return nil
}

// BeerStyleRelation links a style to a related style (shared ancestry or
// similar profile). Directed; the admin console writes both directions.
type BeerStyleRelation struct {
	gorm.Model
	StyleID        uint `gorm:"not null;index"`
	RelatedStyleID uint `gorm:"not null"`
}

// BeerStyleRequest is the staging record for user-proposed styles. Approval
// promotes its fields into a new BeerStyle row; the request itself never
// becomes the canonical entity.
type BeerStyleRequest struct {
	gorm.Model
	Name          string
	Description   string
	Status        moderation.Status `gorm:"type:varchar(16);index"`
	SubmittedByID *uint

	SubmittedBy *User `gorm:"foreignKey:SubmittedByID"`
}

func (r *BeerStyleRequest) BeforeSave(_ *gorm.DB) error {
	_, err := moderation.ParseStatus(string(r.Status))

	return err
}
