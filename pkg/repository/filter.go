package repository

import (
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/moderation"
)

// BeerFilter narrows admin-console and public beer listings. Nil/zero
// fields are skipped; Status nil means "all".
type BeerFilter struct {
	Status        *moderation.Status
	Query         string
	BreweryID     *uint
	StyleID       *uint
	SubmittedByID *uint
	Limit         int
	Offset        int
}

// ListFilter is the common status + free-text filter for breweries, styles,
// style requests and contacts.
type ListFilter struct {
	Status *moderation.Status
	Query  string
	Limit  int
	Offset int
}

func updateQueryWithBeerCriteria(filter *BeerFilter, query *gorm.DB) *gorm.DB {
	if filter == nil {
		return query
	}

	if filter.Status != nil {
		query = query.Where("beers.status = ?", *filter.Status)
	}

	if filter.Query != "" {
		query = query.Where("beers.normalized_name LIKE ?", "%"+moderation.NormalizeName(filter.Query)+"%")
	}

	if filter.BreweryID != nil {
		query = query.Where("beers.brewery_id = ?", *filter.BreweryID)
	}

	if filter.StyleID != nil {
		query = query.Where("beers.style_id = ?", *filter.StyleID)
	}

	if filter.SubmittedByID != nil {
		query = query.Where("beers.submitted_by_id = ?", *filter.SubmittedByID)
	}

	return paginate(query, filter.Limit, filter.Offset)
}

func updateQueryWithListCriteria(filter *ListFilter, table string, query *gorm.DB) *gorm.DB {
	if filter == nil {
		return query
	}

	if filter.Status != nil {
		query = query.Where(table+".status = ?", *filter.Status)
	}

	if filter.Query != "" {
		query = query.Where(table+".normalized_name LIKE ?", "%"+moderation.NormalizeName(filter.Query)+"%")
	}

	return paginate(query, filter.Limit, filter.Offset)
}

func paginate(query *gorm.DB, limit int, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}

	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}
