package repository

import (
	"context"
	"errors"

	"github.com/hoplog/hoplog/pkg/model"
)

var ErrNotOwner = errors.New("not the author of this review")

func (r *Repository) CreateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if result := r.DB.WithContext(ctx).Create(&review); result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &review, nil
}

// DeleteReview removes a review if and only if it belongs to the caller.
func (r *Repository) DeleteReview(ctx context.Context, reviewID uint, authorID uint) error {
	var review model.Review

	if result := r.DB.WithContext(ctx).First(&review, reviewID); result.Error != nil {
		return translateStoreError(result.Error)
	}

	if review.AuthorID != authorID {
		return ErrNotOwner
	}

	result := r.DB.WithContext(ctx).Delete(&review)

	return translateStoreError(result.Error)
}

func (r *Repository) FindReviewsForBeer(ctx context.Context, beerID uint) ([]*model.Review, error) {
	var reviews []*model.Review

	result := r.DB.WithContext(ctx).
		Joins("Author").
		Where("reviews.beer_id = ?", beerID).
		Order("reviews.created_at desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

// ToggleFavorite flips the (user, beer) favorite and reports the new state.
func (r *Repository) ToggleFavorite(ctx context.Context, userID uint, beerID uint) (bool, error) {
	var favorite model.Favorite

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND beer_id = ?", userID, beerID).
		First(&favorite)

	if result.Error == nil {
		if deleted := r.DB.WithContext(ctx).Delete(&favorite); deleted.Error != nil {
			return true, translateStoreError(deleted.Error)
		}

		return false, nil
	}

	if !errors.Is(translateStoreError(result.Error), ErrNotFound) {
		return false, translateStoreError(result.Error)
	}

	favorite = model.Favorite{UserID: userID, BeerID: beerID}
	if created := r.DB.WithContext(ctx).Create(&favorite); created.Error != nil {
		return false, translateStoreError(created.Error)
	}

	return true, nil
}
