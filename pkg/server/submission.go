package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/pkg/auth"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
	"github.com/hoplog/hoplog/pkg/revalidate"
)

// SubmissionServer is the public intake: everything created here enters the
// moderation queue at pending with the caller stamped as submitter,
// whatever the request body claims.
type SubmissionServer struct {
	repository repository.SubmissionRepository
	signaler   revalidate.Signaler
	logger     *zap.Logger
}

func NewSubmissionServer(repository repository.SubmissionRepository, signaler revalidate.Signaler, logger *zap.Logger) *SubmissionServer {
	return &SubmissionServer{repository: repository, signaler: signaler, logger: logger}
}

type SubmitBeerRequest struct {
	Name        string   `json:"name"        validate:"required"`
	BreweryID   uint     `json:"breweryId"   validate:"required"`
	StyleID     *uint    `json:"styleId"`
	ABV         *float64 `json:"abv"`
	IBU         *uint64  `json:"ibu"`
	Description string   `json:"description"`
}

func (s *SubmissionServer) SubmitBeer(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, s.logger, "submit beer", err)
	}

	var request SubmitBeerRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&request); err != nil {
		return actionError(c, s.logger, "submit beer", err)
	}

	if _, err := s.repository.GetBreweryByID(c.Request().Context(), request.BreweryID); err != nil {
		return actionError(c, s.logger, "submit beer", err)
	}

	beer := model.Beer{
		Name:          request.Name,
		BreweryID:     request.BreweryID,
		StyleID:       request.StyleID,
		ABV:           request.ABV,
		IBU:           request.IBU,
		Description:   request.Description,
		Status:        moderation.StatusPending,
		SubmittedByID: &user.ID,
	}

	created, err := s.repository.CreateBeer(c.Request().Context(), beer)
	if err != nil {
		return actionError(c, s.logger, "submit beer", err)
	}

	s.revalidate(c, revalidate.PathBeers, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "beer": created})
}

type SubmitStyleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *SubmissionServer) SubmitStyleRequest(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, s.logger, "submit style request", err)
	}

	var request SubmitStyleRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&request); err != nil {
		return actionError(c, s.logger, "submit style request", err)
	}

	styleRequest := model.BeerStyleRequest{
		Name:          request.Name,
		Description:   request.Description,
		Status:        moderation.StatusPending,
		SubmittedByID: &user.ID,
	}

	created, err := s.repository.CreateStyleRequest(c.Request().Context(), styleRequest)
	if err != nil {
		return actionError(c, s.logger, "submit style request", err)
	}

	s.revalidate(c, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "request": created})
}

type SubmitContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact is the one intake open to anonymous callers; a resolved
// identity is attached when present.
func (s *SubmissionServer) SubmitContact(c echo.Context) error {
	var request SubmitContactRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&request); err != nil {
		return actionError(c, s.logger, "submit contact", err)
	}

	contact := model.Contact{
		Name:    request.Name,
		Email:   request.Email,
		Subject: request.Subject,
		Message: request.Message,
		Status:  model.ContactPending,
	}

	if user, err := auth.CurrentUser(c); err == nil {
		contact.SubmittedByID = &user.ID
	}

	created, err := s.repository.CreateContact(c.Request().Context(), contact)
	if err != nil {
		return actionError(c, s.logger, "submit contact", err)
	}

	s.revalidate(c, revalidate.PathAdminContacts, revalidate.PathDashboard)

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "contact": created})
}

// revalidation is best-effort: a stale page is preferable to failing an
// already-committed mutation.
func (s *SubmissionServer) revalidate(c echo.Context, paths ...string) {
	if err := s.signaler.Revalidate(c.Request().Context(), paths...); err != nil {
		s.logger.Warn("revalidation failed", zap.Error(err))
	}
}
