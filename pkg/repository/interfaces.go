package repository

import (
	"context"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
)

// SubmissionRepository is the store surface behind the public submission
// intake.
type SubmissionRepository interface {
	CreateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	CreateStyleRequest(ctx context.Context, request model.BeerStyleRequest) (*model.BeerStyleRequest, error)
	CreateContact(ctx context.Context, contact model.Contact) (*model.Contact, error)
	GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error)
}

// ModerationRepository is the store surface behind the admin moderation
// console.
type ModerationRepository interface {
	SetBeerStatus(ctx context.Context, beerID uint, to moderation.Status, edits *BeerEdits, actor model.User) (*model.Beer, error)
	PromoteStyleRequest(ctx context.Context, requestID uint, actor model.User) (*model.BeerStyle, error)
	SetStyleRequestStatus(ctx context.Context, requestID uint, to moderation.Status, actor model.User) (*model.BeerStyleRequest, error)
	SetBreweryStatus(ctx context.Context, breweryID uint, to moderation.Status, actor model.User) (*model.Brewery, error)
	SetStyleStatus(ctx context.Context, styleID uint, to moderation.Status, actor model.User) (*model.BeerStyle, error)
	SetContactStatus(ctx context.Context, contactID uint, to model.ContactStatus, adminNote string) (*model.Contact, error)
	GetContactByID(ctx context.Context, contactID uint) (*model.Contact, error)
	FindStyleRequests(ctx context.Context, filter *ListFilter) ([]*model.BeerStyleRequest, error)
	FindContacts(ctx context.Context, status *model.ContactStatus, limit int, offset int) ([]*model.Contact, error)
	GetQueueCounts(ctx context.Context) (*QueueCounts, error)
	ListTransitions(ctx context.Context, entity model.Entity, entityID uint) ([]*model.StatusTransition, error)
}

// CatalogRepository is the store surface behind admin catalog management
// and the public read endpoints.
type CatalogRepository interface {
	CreateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	UpdateBeer(ctx context.Context, beer *model.Beer) (*model.Beer, error)
	DeleteBeer(ctx context.Context, beerID uint) error
	GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error)
	FindBeers(ctx context.Context, filter *BeerFilter) ([]*model.Beer, error)
	CreateBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error)
	UpdateBrewery(ctx context.Context, brewery *model.Brewery) (*model.Brewery, error)
	DeleteBrewery(ctx context.Context, breweryID uint) error
	GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error)
	FindBreweries(ctx context.Context, filter *ListFilter) ([]*model.Brewery, error)
	CreateStyle(ctx context.Context, style model.BeerStyle, otherNames []string) (*model.BeerStyle, error)
	UpdateStyle(ctx context.Context, style *model.BeerStyle, otherNames []string) (*model.BeerStyle, error)
	DeleteStyle(ctx context.Context, styleID uint) error
	GetStyleByID(ctx context.Context, styleID uint) (*model.BeerStyle, error)
	GetStyleBySlug(ctx context.Context, slug string) (*model.BeerStyle, error)
	FindStyles(ctx context.Context, filter *ListFilter) ([]*model.BeerStyle, error)
}

// ReviewRepository is the store surface behind reviews and favorites.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review model.Review) (*model.Review, error)
	DeleteReview(ctx context.Context, reviewID uint, authorID uint) error
	FindReviewsForBeer(ctx context.Context, beerID uint) ([]*model.Review, error)
	ToggleFavorite(ctx context.Context, userID uint, beerID uint) (bool, error)
}
