package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/pkg/auth"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/repository"
)

// ReviewServer handles user-owned reviews and favorites. No moderation
// applies here; ownership is the only gate.
type ReviewServer struct {
	repository repository.ReviewRepository
	logger     *zap.Logger
}

func NewReviewServer(repository repository.ReviewRepository, logger *zap.Logger) *ReviewServer {
	return &ReviewServer{repository: repository, logger: logger}
}

type CreateReviewRequest struct {
	BeerID uint   `json:"beerId" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Body   string `json:"body"`
}

func (s *ReviewServer) CreateReview(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, s.logger, "create review", err)
	}

	var request CreateReviewRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&request); err != nil {
		return actionError(c, s.logger, "create review", err)
	}

	review := model.Review{
		BeerID:   request.BeerID,
		AuthorID: user.ID,
		Rating:   request.Rating,
		Body:     request.Body,
	}

	created, err := s.repository.CreateReview(c.Request().Context(), review)
	if err != nil {
		return actionError(c, s.logger, "create review", err)
	}

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "review": created})
}

func (s *ReviewServer) DeleteReview(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, s.logger, "delete review", err)
	}

	reviewID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := s.repository.DeleteReview(c.Request().Context(), reviewID, user.ID); err != nil {
		return actionError(c, s.logger, "delete review", err)
	}

	return c.JSON(http.StatusOK, ActionResult{Success: true})
}

func (s *ReviewServer) ListReviews(c echo.Context) error {
	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	reviews, err := s.repository.FindReviewsForBeer(c.Request().Context(), beerID)
	if err != nil {
		return actionError(c, s.logger, "list reviews", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "reviews": reviews})
}

func (s *ReviewServer) ToggleFavorite(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, s.logger, "toggle favorite", err)
	}

	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	favorited, err := s.repository.ToggleFavorite(c.Request().Context(), user.ID, beerID)
	if err != nil {
		return actionError(c, s.logger, "toggle favorite", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "favorited": favorited})
}
