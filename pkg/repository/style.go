package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
)

// styleNameExists checks a candidate name against both the canonical style
// table and the other-names table. excludeStyleID removes the style being
// edited (and its own aliases) from the comparison.
func (r *Repository) styleNameExists(tx *gorm.DB, name string, excludeStyleID uint) (bool, error) {
	normalized := moderation.NormalizeName(name)

	var count int64

	query := tx.Model(&model.BeerStyle{}).Where("normalized_name = ?", normalized)
	if excludeStyleID != 0 {
		query = query.Where("id <> ?", excludeStyleID)
	}

	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}

	if count > 0 {
		return true, nil
	}

	query = tx.Model(&model.BeerStyleOtherName{}).Where("normalized_name = ?", normalized)
	if excludeStyleID != 0 {
		query = query.Where("style_id <> ?", excludeStyleID)
	}

	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) guardStyleNames(tx *gorm.DB, style *model.BeerStyle, otherNames []string, excludeStyleID uint) error {
	names := append([]string{style.Name}, otherNames...)

	for _, name := range names {
		exists, err := r.styleNameExists(tx, name, excludeStyleID)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}

	return nil
}

func (r *Repository) CreateStyle(ctx context.Context, style model.BeerStyle, otherNames []string) (*model.BeerStyle, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.guardStyleNames(tx, &style, otherNames, 0); err != nil {
			return err
		}

		for _, name := range otherNames {
			style.OtherNames = append(style.OtherNames, model.BeerStyleOtherName{Name: name})
		}

		return tx.Create(&style).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &style, nil
}

// UpdateStyle saves the style and replaces its other-names list wholesale:
// the old alias rows are deleted and the new set inserted, never diffed.
func (r *Repository) UpdateStyle(ctx context.Context, style *model.BeerStyle, otherNames []string) (*model.BeerStyle, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.guardStyleNames(tx, style, otherNames, style.ID); err != nil {
			return err
		}

		style.OtherNames = nil

		if result := tx.Save(style); result.Error != nil {
			return result.Error
		}

		if result := tx.Unscoped().Where("style_id = ?", style.ID).Delete(&model.BeerStyleOtherName{}); result.Error != nil {
			return result.Error
		}

		for _, name := range otherNames {
			otherName := model.BeerStyleOtherName{StyleID: style.ID, Name: name}
			if result := tx.Create(&otherName); result.Error != nil {
				return result.Error
			}

			style.OtherNames = append(style.OtherNames, otherName)
		}

		return nil
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return style, nil
}

// DeleteStyle refuses to remove a style while any beer references it, for
// the same soft-delete reason as DeleteBrewery.
func (r *Repository) DeleteStyle(ctx context.Context, styleID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if result := tx.Model(&model.Beer{}).Where("style_id = ?", styleID).Count(&count); result.Error != nil {
			return result.Error
		}

		if count > 0 {
			return ErrStillReferenced
		}

		return tx.Delete(&model.BeerStyle{}, styleID).Error
	})

	return translateStoreError(err)
}

func (r *Repository) GetStyleByID(ctx context.Context, styleID uint) (*model.BeerStyle, error) {
	var style model.BeerStyle

	result := r.DB.WithContext(ctx).
		Preload("OtherNames").
		Preload("Relations").
		First(&style, styleID)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &style, nil
}

func (r *Repository) GetStyleBySlug(ctx context.Context, slug string) (*model.BeerStyle, error) {
	var style model.BeerStyle

	result := r.DB.WithContext(ctx).
		Preload("OtherNames").
		Preload("Relations").
		Where("slug = ?", slug).
		First(&style)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &style, nil
}

func (r *Repository) FindStyles(ctx context.Context, filter *ListFilter) ([]*model.BeerStyle, error) {
	var styles []*model.BeerStyle

	query := r.DB.WithContext(ctx).
		Preload("OtherNames").
		Order("beer_styles.name asc")

	query = updateQueryWithListCriteria(filter, "beer_styles", query)

	if result := query.Find(&styles); result.Error != nil {
		return nil, result.Error
	}

	return styles, nil
}

func (r *Repository) SetStyleStatus(ctx context.Context, styleID uint, to moderation.Status, actor model.User) (*model.BeerStyle, error) {
	var style model.BeerStyle

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&style, styleID); result.Error != nil {
			return result.Error
		}

		if err := moderation.CheckTransition(style.Status, to, actor.Role); err != nil {
			return err
		}

		from := style.Status
		style.Status = to

		if result := tx.Save(&style); result.Error != nil {
			return result.Error
		}

		if from == to {
			return nil
		}

		return appendTransition(tx, model.EntityStyle, style.ID, from, to, actor.ID)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &style, nil
}

func (r *Repository) CreateStyleRequest(ctx context.Context, request model.BeerStyleRequest) (*model.BeerStyleRequest, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := r.styleNameExists(tx, request.Name, 0)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, request.Name)
		}

		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &request, nil
}

func (r *Repository) FindStyleRequests(ctx context.Context, filter *ListFilter) ([]*model.BeerStyleRequest, error) {
	var requests []*model.BeerStyleRequest

	query := r.DB.WithContext(ctx).
		Joins("SubmittedBy").
		Order("beer_style_requests.created_at asc")

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("beer_style_requests.status = ?", *filter.Status)
		}

		if filter.Query != "" {
			query = query.Where("beer_style_requests.name LIKE ?", "%"+filter.Query+"%")
		}

		query = paginate(query, filter.Limit, filter.Offset)
	}

	if result := query.Find(&requests); result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

// PromoteStyleRequest is the compound approval: inside one transaction the
// request row is re-read under a row lock and must still be pending (a
// second click on approve fails the gate instead of inserting a second
// style), then the canonical style is created from the request's fields and
// the request marked approved.
func (r *Repository) PromoteStyleRequest(ctx context.Context, requestID uint, actor model.User) (*model.BeerStyle, error) {
	var style model.BeerStyle

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request model.BeerStyleRequest

		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, requestID); result.Error != nil {
			return result.Error
		}

		if request.Status != moderation.StatusPending {
			return fmt.Errorf("%w: request is already %s", moderation.ErrIllegalTransition, request.Status)
		}

		if err := moderation.CheckTransition(request.Status, moderation.StatusApproved, actor.Role); err != nil {
			return err
		}

		exists, err := r.styleNameExists(tx, request.Name, 0)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, request.Name)
		}

		style = model.BeerStyle{
			Name:        request.Name,
			Description: request.Description,
			Status:      moderation.StatusApproved,
		}

		if result := tx.Create(&style); result.Error != nil {
			return result.Error
		}

		request.Status = moderation.StatusApproved

		if result := tx.Save(&request); result.Error != nil {
			return result.Error
		}

		return appendTransition(tx, model.EntityStyleRequest, request.ID, moderation.StatusPending, moderation.StatusApproved, actor.ID)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &style, nil
}

func (r *Repository) SetStyleRequestStatus(ctx context.Context, requestID uint, to moderation.Status, actor model.User) (*model.BeerStyleRequest, error) {
	var request model.BeerStyleRequest

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&request, requestID); result.Error != nil {
			return result.Error
		}

		if err := moderation.CheckTransition(request.Status, to, actor.Role); err != nil {
			return err
		}

		from := request.Status
		request.Status = to

		if result := tx.Save(&request); result.Error != nil {
			return result.Error
		}

		if from == to {
			return nil
		}

		return appendTransition(tx, model.EntityStyleRequest, request.ID, from, to, actor.ID)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &request, nil
}
