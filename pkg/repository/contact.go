package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
)

func (r *Repository) CreateContact(ctx context.Context, contact model.Contact) (*model.Contact, error) {
	if result := r.DB.WithContext(ctx).Create(&contact); result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &contact, nil
}

func (r *Repository) GetContactByID(ctx context.Context, contactID uint) (*model.Contact, error) {
	var contact model.Contact

	result := r.DB.WithContext(ctx).First(&contact, contactID)
	if result.Error != nil {
		return nil, translateStoreError(result.Error)
	}

	return &contact, nil
}

func (r *Repository) FindContacts(ctx context.Context, status *model.ContactStatus, limit int, offset int) ([]*model.Contact, error) {
	var contacts []*model.Contact

	query := r.DB.WithContext(ctx).Order("contacts.created_at asc")

	if status != nil {
		query = query.Where("contacts.status = ?", *status)
	}

	query = paginate(query, limit, offset)

	if result := query.Find(&contacts); result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

// SetContactStatus advances a contact through its inbox progression. The
// progression only moves forward; a note may be attached with any advance.
func (r *Repository) SetContactStatus(ctx context.Context, contactID uint, to model.ContactStatus, adminNote string) (*model.Contact, error) {
	var contact model.Contact

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&contact, contactID); result.Error != nil {
			return result.Error
		}

		if !contact.Status.CanAdvanceTo(to) {
			return fmt.Errorf("%w: %s -> %s", moderation.ErrIllegalTransition, contact.Status, to)
		}

		contact.Status = to
		if adminNote != "" {
			contact.AdminNote = adminNote
		}

		return tx.Save(&contact).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	return &contact, nil
}

// QueueCounts feeds the admin dashboard badges in a single round trip.
type QueueCounts struct {
	PendingBeers         int64
	PendingStyleRequests int64
	PendingContacts      int64
}

func (r *Repository) GetQueueCounts(ctx context.Context) (*QueueCounts, error) {
	var counts QueueCounts

	result := r.DB.WithContext(ctx).Raw(
		"SELECT" +
			" (SELECT count(*) FROM beers WHERE status = 'pending' AND deleted_at IS NULL) AS pending_beers," +
			" (SELECT count(*) FROM beer_style_requests WHERE status = 'pending' AND deleted_at IS NULL) AS pending_style_requests," +
			" (SELECT count(*) FROM contacts WHERE status = 'pending' AND deleted_at IS NULL) AS pending_contacts").
		Scan(&counts)

	if result.Error != nil {
		return nil, result.Error
	}

	return &counts, nil
}
