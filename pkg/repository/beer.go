package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
)

// BeerEdits carries the admin corrections that may be applied together with
// an approval, so user-entered data can be fixed in the same update.
type BeerEdits struct {
	Name        *string
	StyleID     *uint
	ABV         *float64
	IBU         *uint64
	Description *string
}

func (r *Repository) beerNameExists(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64

	query := tx.Model(&model.Beer{}).Where("normalized_name = ?", moderation.NormalizeName(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// CreateBeer runs the duplicate guard and inserts the beer in one
// transaction. The caller decides the initial status and submitter.
func (r *Repository) CreateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := r.beerNameExists(tx, beer.Name, 0)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, beer.Name)
		}

		return tx.Create(&beer).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &beer, nil
}

// UpdateBeer saves an admin edit, re-running the duplicate guard with the
// row itself excluded in case of a rename.
func (r *Repository) UpdateBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := r.beerNameExists(tx, beer.Name, beer.ID)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, beer.Name)
		}

		return tx.Save(beer).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return beer, nil
}

func (r *Repository) DeleteBeer(ctx context.Context, beerID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Beer{}, beerID)

	return translateStoreError(result.Error)
}

func (r *Repository) GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).
		Joins("Brewery").
		Joins("Style").
		Joins("SubmittedBy").
		First(&beer, beerID)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &beer, nil
}

func (r *Repository) FindBeers(ctx context.Context, filter *BeerFilter) ([]*model.Beer, error) {
	var beers []*model.Beer

	query := r.DB.WithContext(ctx).
		Joins("Brewery").
		Joins("Style").
		Order("beers.name asc")

	query = updateQueryWithBeerCriteria(filter, query)

	if result := query.Find(&beers); result.Error != nil {
		r.Logger.Error("error listing beers", zap.Error(result.Error))

		return nil, result.Error
	}

	return beers, nil
}

// SetBeerStatus performs a moderation action: the transition gate, the
// optional admin corrections, the row update and the audit record all
// commit or roll back together.
func (r *Repository) SetBeerStatus(ctx context.Context, beerID uint, to moderation.Status, edits *BeerEdits, actor model.User) (*model.Beer, error) {
	var beer model.Beer

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&beer, beerID); result.Error != nil {
			return result.Error
		}

		if err := moderation.CheckTransition(beer.Status, to, actor.Role); err != nil {
			return err
		}

		from := beer.Status

		if err := applyBeerEdits(tx, &beer, edits); err != nil {
			return err
		}

		beer.Status = to

		if result := tx.Save(&beer); result.Error != nil {
			return result.Error
		}

		if from == to {
			return nil
		}

		return appendTransition(tx, model.EntityBeer, beer.ID, from, to, actor.ID)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &beer, nil
}

func applyBeerEdits(tx *gorm.DB, beer *model.Beer, edits *BeerEdits) error {
	if edits == nil {
		return nil
	}

	if edits.Name != nil && *edits.Name != beer.Name {
		var count int64

		result := tx.Model(&model.Beer{}).
			Where("normalized_name = ?", moderation.NormalizeName(*edits.Name)).
			Where("id <> ?", beer.ID).
			Count(&count)
		if result.Error != nil {
			return result.Error
		}

		if count > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateName, *edits.Name)
		}

		beer.Name = *edits.Name
	}

	if edits.StyleID != nil {
		beer.StyleID = edits.StyleID
	}

	if edits.ABV != nil {
		beer.ABV = edits.ABV
	}

	if edits.IBU != nil {
		beer.IBU = edits.IBU
	}

	if edits.Description != nil {
		beer.Description = *edits.Description
	}

	return nil
}
