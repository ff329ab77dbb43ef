package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
)

// UserRepository is the store surface the auth layer depends on.
type UserRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	EnsureUser(ctx context.Context, username string, email string) (*model.User, error)
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return user, nil
}

// EnsureUser mirrors an auth-provider identity into the local users table,
// creating the row with the default role on a user's first request.
func (r *Repository) EnsureUser(ctx context.Context, username string, email string) (*model.User, error) {
	user, err := r.GetUserFromEmail(ctx, email)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := model.User{
		UUID:     uuid.New(),
		Username: username,
		Email:    email,
		Role:     moderation.RoleUser,
	}

	if result := r.DB.WithContext(ctx).Create(&created); result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &created, nil
}

// appendTransition writes one audit row for a status mutation. Callers pass
// the transaction handle so the audit commits or rolls back with the change.
func appendTransition(tx *gorm.DB, entity model.Entity, entityID uint, from moderation.Status, to moderation.Status, actorID uint) error {
	transition := model.StatusTransition{
		EntityType: entity,
		EntityID:   entityID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actorID,
	}

	return tx.Create(&transition).Error
}

func (r *Repository) ListTransitions(ctx context.Context, entity model.Entity, entityID uint) ([]*model.StatusTransition, error) {
	var transitions []*model.StatusTransition

	result := r.DB.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entity, entityID).
		Order("created_at asc").
		Find(&transitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transitions, nil
}
