package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/configs"
	"github.com/hoplog/hoplog/pkg/integrations"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
	"github.com/hoplog/hoplog/pkg/revalidate"
)

// Presigner is the object-storage collaborator; only URL issuing crosses
// this boundary.
type Presigner interface {
	PresignUpload(ctx context.Context, kind string, filename string) (string, string, error)
}

// CatalogServer backs admin catalog management and the public read
// endpoints. Rows created here are admin-direct: approved, no submitter.
type CatalogServer struct {
	repository repository.CatalogRepository
	signaler   revalidate.Signaler
	presigner  Presigner
	config     *configs.Config
	logger     *zap.Logger
}

func NewCatalogServer(repository repository.CatalogRepository, signaler revalidate.Signaler, presigner Presigner, config *configs.Config, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{repository: repository, signaler: signaler, presigner: presigner, config: config, logger: logger}
}

type BeerPayload struct {
	Name        string   `json:"name"      validate:"required"`
	BreweryID   uint     `json:"breweryId" validate:"required"`
	StyleID     *uint    `json:"styleId"`
	ABV         *float64 `json:"abv"`
	IBU         *uint64  `json:"ibu"`
	Description string   `json:"description"`
	ImageKey    string   `json:"imageKey"`
}

func (s *CatalogServer) CreateBeer(c echo.Context) error {
	var payload BeerPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&payload); err != nil {
		return actionError(c, s.logger, "create beer", err)
	}

	beer := model.Beer{
		Name:        payload.Name,
		BreweryID:   payload.BreweryID,
		StyleID:     payload.StyleID,
		ABV:         payload.ABV,
		IBU:         payload.IBU,
		Description: payload.Description,
		ImageKey:    payload.ImageKey,
		Status:      moderation.StatusApproved,
	}

	created, err := s.repository.CreateBeer(c.Request().Context(), beer)
	if err != nil {
		return actionError(c, s.logger, "create beer", err)
	}

	s.revalidate(c, revalidate.PathBeers)

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "beer": created})
}

func (s *CatalogServer) UpdateBeer(c echo.Context) error {
	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var payload BeerPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&payload); err != nil {
		return actionError(c, s.logger, "update beer", err)
	}

	beer, err := s.repository.GetBeerByID(c.Request().Context(), beerID)
	if err != nil {
		return actionError(c, s.logger, "update beer", err)
	}

	beer.Name = payload.Name
	beer.BreweryID = payload.BreweryID
	beer.StyleID = payload.StyleID
	beer.ABV = payload.ABV
	beer.IBU = payload.IBU
	beer.Description = payload.Description

	if payload.ImageKey != "" {
		beer.ImageKey = payload.ImageKey
	}

	updated, err := s.repository.UpdateBeer(c.Request().Context(), beer)
	if err != nil {
		return actionError(c, s.logger, "update beer", err)
	}

	s.revalidate(c, revalidate.PathBeers)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beer": updated})
}

func (s *CatalogServer) DeleteBeer(c echo.Context) error {
	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := s.repository.DeleteBeer(c.Request().Context(), beerID); err != nil {
		return actionError(c, s.logger, "delete beer", err)
	}

	s.revalidate(c, revalidate.PathBeers, revalidate.PathAdminQueue)

	return c.JSON(http.StatusOK, ActionResult{Success: true})
}

// GetBeer is a public read; rows outside approved do not exist to it.
func (s *CatalogServer) GetBeer(c echo.Context) error {
	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	beer, err := s.repository.GetBeerByID(c.Request().Context(), beerID)
	if err != nil {
		return actionError(c, s.logger, "get beer", err)
	}

	if beer.Status != moderation.StatusApproved {
		return actionError(c, s.logger, "get beer", repository.ErrNotFound)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beer": beer})
}

// ListBeers serves both the admin console (any status filter plus free-text
// search) and the public listing, which pins status=approved.
func (s *CatalogServer) ListBeers(c echo.Context) error {
	status, err := parseListStatus(c.QueryParam("status"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := repository.BeerFilter{Status: status, Query: c.QueryParam("q")}

	beers, err := s.repository.FindBeers(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, s.logger, "list beers", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beers": beers})
}

func (s *CatalogServer) ListApprovedBeers(c echo.Context) error {
	approved := moderation.StatusApproved
	filter := repository.BeerFilter{Status: &approved, Query: c.QueryParam("q")}

	beers, err := s.repository.FindBeers(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, s.logger, "list beers", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beers": beers})
}

type BreweryPayload struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	PrefectureID *uint  `json:"prefectureId"`
	ImageKey     string `json:"imageKey"`
}

func (s *CatalogServer) CreateBrewery(c echo.Context) error {
	var payload BreweryPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&payload); err != nil {
		return actionError(c, s.logger, "create brewery", err)
	}

	brewery := model.Brewery{
		Name:         payload.Name,
		Description:  payload.Description,
		PrefectureID: payload.PrefectureID,
		ImageKey:     payload.ImageKey,
		Status:       moderation.StatusApproved,
	}

	created, err := s.repository.CreateBrewery(c.Request().Context(), brewery)
	if err != nil {
		return actionError(c, s.logger, "create brewery", err)
	}

	s.revalidate(c, revalidate.PathBreweries)

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "brewery": created})
}

func (s *CatalogServer) UpdateBrewery(c echo.Context) error {
	breweryID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var payload BreweryPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&payload); err != nil {
		return actionError(c, s.logger, "update brewery", err)
	}

	brewery, err := s.repository.GetBreweryByID(c.Request().Context(), breweryID)
	if err != nil {
		return actionError(c, s.logger, "update brewery", err)
	}

	brewery.Name = payload.Name
	brewery.Description = payload.Description
	brewery.PrefectureID = payload.PrefectureID

	if payload.ImageKey != "" {
		brewery.ImageKey = payload.ImageKey
	}

	updated, err := s.repository.UpdateBrewery(c.Request().Context(), brewery)
	if err != nil {
		return actionError(c, s.logger, "update brewery", err)
	}

	s.revalidate(c, revalidate.PathBreweries)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "brewery": updated})
}

// DeleteBrewery surfaces the referential block as a user-facing conflict;
// rows referenced by beers never disappear out from under them.
func (s *CatalogServer) DeleteBrewery(c echo.Context) error {
	breweryID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := s.repository.DeleteBrewery(c.Request().Context(), breweryID); err != nil {
		return actionError(c, s.logger, "delete brewery", err)
	}

	s.revalidate(c, revalidate.PathBreweries)

	return c.JSON(http.StatusOK, ActionResult{Success: true})
}

// ListBreweries is the admin listing; the public route uses
// ListApprovedBreweries, which ignores the status param.
func (s *CatalogServer) ListBreweries(c echo.Context) error {
	status, err := parseListStatus(c.QueryParam("status"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := repository.ListFilter{Status: status, Query: c.QueryParam("q")}

	breweries, err := s.repository.FindBreweries(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, s.logger, "list breweries", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "breweries": breweries})
}

func (s *CatalogServer) ListApprovedBreweries(c echo.Context) error {
	approved := moderation.StatusApproved
	filter := repository.ListFilter{Status: &approved, Query: c.QueryParam("q")}

	breweries, err := s.repository.FindBreweries(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, s.logger, "list breweries", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "breweries": breweries})
}

type StylePayload struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Bitterness  int      `json:"bitterness" validate:"omitempty,min=1,max=5"`
	Sweetness   int      `json:"sweetness"  validate:"omitempty,min=1,max=5"`
	Sourness    int      `json:"sourness"   validate:"omitempty,min=1,max=5"`
	Body        int      `json:"body"       validate:"omitempty,min=1,max=5"`
	Aroma       int      `json:"aroma"      validate:"omitempty,min=1,max=5"`
	ABVMin      *float64 `json:"abvMin"`
	ABVMax      *float64 `json:"abvMax"`
	IBUMin      *uint64  `json:"ibuMin"`
	IBUMax      *uint64  `json:"ibuMax"`
	SRMMin      *float64 `json:"srmMin"`
	SRMMax      *float64 `json:"srmMax"`
	OtherNames  []string `json:"otherNames"`
}

func stylePayloadToModel(style *model.BeerStyle, request *StylePayload) {
	style.Name = request.Name
	style.Description = request.Description
	style.Bitterness = request.Bitterness
	style.Sweetness = request.Sweetness
	style.Sourness = request.Sourness
	style.Body = request.Body
	style.Aroma = request.Aroma
	style.ABVMin = request.ABVMin
	style.ABVMax = request.ABVMax
	style.IBUMin = request.IBUMin
	style.IBUMax = request.IBUMax
	style.SRMMin = request.SRMMin
	style.SRMMax = request.SRMMax
}

func (s *CatalogServer) CreateStyle(c echo.Context) error {
	var payload StylePayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&payload); err != nil {
		return actionError(c, s.logger, "create style", err)
	}

	style := model.BeerStyle{Status: moderation.StatusApproved}
	stylePayloadToModel(&style, &payload)

	created, err := s.repository.CreateStyle(c.Request().Context(), style, payload.OtherNames)
	if err != nil {
		return actionError(c, s.logger, "create style", err)
	}

	s.revalidate(c, revalidate.PathStyles)

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "style": created})
}

// UpdateStyle replaces the style's other-names list wholesale along with
// the edit.
func (s *CatalogServer) UpdateStyle(c echo.Context) error {
	styleID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var payload StylePayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&payload); err != nil {
		return actionError(c, s.logger, "update style", err)
	}

	style, err := s.repository.GetStyleByID(c.Request().Context(), styleID)
	if err != nil {
		return actionError(c, s.logger, "update style", err)
	}

	stylePayloadToModel(style, &payload)

	updated, err := s.repository.UpdateStyle(c.Request().Context(), style, payload.OtherNames)
	if err != nil {
		return actionError(c, s.logger, "update style", err)
	}

	s.revalidate(c, revalidate.PathStyles)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "style": updated})
}

func (s *CatalogServer) DeleteStyle(c echo.Context) error {
	styleID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := s.repository.DeleteStyle(c.Request().Context(), styleID); err != nil {
		return actionError(c, s.logger, "delete style", err)
	}

	s.revalidate(c, revalidate.PathStyles)

	return c.JSON(http.StatusOK, ActionResult{Success: true})
}

// GetStyleBySlug is a public read; non-approved styles stay invisible.
func (s *CatalogServer) GetStyleBySlug(c echo.Context) error {
	style, err := s.repository.GetStyleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return actionError(c, s.logger, "get style", err)
	}

	if style.Status != moderation.StatusApproved {
		return actionError(c, s.logger, "get style", repository.ErrNotFound)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "style": style})
}

func (s *CatalogServer) ListStyles(c echo.Context) error {
	status, err := parseListStatus(c.QueryParam("status"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := repository.ListFilter{Status: status, Query: c.QueryParam("q")}

	styles, err := s.repository.FindStyles(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, s.logger, "list styles", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "styles": styles})
}

func (s *CatalogServer) ListApprovedStyles(c echo.Context) error {
	approved := moderation.StatusApproved
	filter := repository.ListFilter{Status: &approved, Query: c.QueryParam("q")}

	styles, err := s.repository.FindStyles(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, s.logger, "list styles", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "styles": styles})
}

// LookupBeers prefills the admin create-beer form from the configured
// external catalog integrations. Failures of one integration do not hide
// results from the others.
func (s *CatalogServer) LookupBeers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return badRequest(c, "q is required")
	}

	var results []model.BeerLookup

	for _, name := range s.config.Integrations.Beer {
		integration := integrations.GetIntegration(name, s.logger)
		if integration == nil {
			continue
		}

		found, err := integration.FindBeer(query)
		if err != nil {
			s.logger.Error("failed beer lookup", zap.String("integration", name), zap.Error(err))

			continue
		}

		results = append(results, found...)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beers": results})
}

// LookupBreweries is the brewery counterpart of LookupBeers.
func (s *CatalogServer) LookupBreweries(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return badRequest(c, "q is required")
	}

	var results []model.BreweryLookup

	for _, name := range s.config.Integrations.Beer {
		integration := integrations.GetIntegration(name, s.logger)
		if integration == nil {
			continue
		}

		found, err := integration.FindBrewery(query)
		if err != nil {
			s.logger.Error("failed brewery lookup", zap.String("integration", name), zap.Error(err))

			continue
		}

		results = append(results, found...)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "breweries": results})
}

type PresignUploadRequest struct {
	Kind     string `json:"kind"     validate:"required,oneof=beer brewery"`
	Filename string `json:"filename" validate:"required"`
}

func (s *CatalogServer) PresignUpload(c echo.Context) error {
	var request PresignUploadRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := c.Validate(&request); err != nil {
		return actionError(c, s.logger, "presign upload", err)
	}

	uploadURL, key, err := s.presigner.PresignUpload(c.Request().Context(), request.Kind, request.Filename)
	if err != nil {
		return actionError(c, s.logger, "presign upload", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "url": uploadURL, "key": key})
}

func (s *CatalogServer) revalidate(c echo.Context, paths ...string) {
	if err := s.signaler.Revalidate(c.Request().Context(), paths...); err != nil {
		s.logger.Warn("revalidation failed", zap.Error(err))
	}
}
