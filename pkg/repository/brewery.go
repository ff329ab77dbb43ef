package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
)

func (r *Repository) breweryNameExists(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64

	query := tx.Model(&model.Brewery{}).Where("normalized_name = ?", moderation.NormalizeName(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) CreateBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := r.breweryNameExists(tx, brewery.Name, 0)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, brewery.Name)
		}

		return tx.Create(&brewery).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &brewery, nil
}

func (r *Repository) UpdateBrewery(ctx context.Context, brewery *model.Brewery) (*model.Brewery, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := r.breweryNameExists(tx, brewery.Name, brewery.ID)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, brewery.Name)
		}

		return tx.Save(brewery).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return brewery, nil
}

// DeleteBrewery fails with ErrStillReferenced while any beer points at the
// brewery. Rows soft-delete, which bypasses the store's foreign key, so the
// reference count and the delete share one transaction.
func (r *Repository) DeleteBrewery(ctx context.Context, breweryID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if result := tx.Model(&model.Beer{}).Where("brewery_id = ?", breweryID).Count(&count); result.Error != nil {
			return result.Error
		}

		if count > 0 {
			return ErrStillReferenced
		}

		return tx.Delete(&model.Brewery{}, breweryID).Error
	})

	return translateStoreError(err)
}

func (r *Repository) GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error) {
	var brewery model.Brewery

	result := r.DB.WithContext(ctx).
		Joins("Prefecture").
		First(&brewery, breweryID)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &brewery, nil
}

func (r *Repository) FindBreweries(ctx context.Context, filter *ListFilter) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	query := r.DB.WithContext(ctx).
		Joins("Prefecture").
		Order("breweries.name asc")

	query = updateQueryWithListCriteria(filter, "breweries", query)

	if result := query.Find(&breweries); result.Error != nil {
		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) SetBreweryStatus(ctx context.Context, breweryID uint, to moderation.Status, actor model.User) (*model.Brewery, error) {
	var brewery model.Brewery

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&brewery, breweryID); result.Error != nil {
			return result.Error
		}

		if err := moderation.CheckTransition(brewery.Status, to, actor.Role); err != nil {
			return err
		}

		from := brewery.Status
		brewery.Status = to

		if result := tx.Save(&brewery); result.Error != nil {
			return result.Error
		}

		if from == to {
			return nil
		}

		return appendTransition(tx, model.EntityBrewery, brewery.ID, from, to, actor.ID)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &brewery, nil
}
