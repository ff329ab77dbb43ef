package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/pkg/auth"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
	"github.com/hoplog/hoplog/pkg/revalidate"
)

// ModerationServer carries the admin approve/reject actions and the queue
// reads. Routes are registered behind the admin middleware; handlers still
// resolve the actor because the transition gate wants to know who acted.
type ModerationServer struct {
	repository repository.ModerationRepository
	signaler   revalidate.Signaler
	logger     *zap.Logger
}

func NewModerationServer(repository repository.ModerationRepository, signaler revalidate.Signaler, logger *zap.Logger) *ModerationServer {
	return &ModerationServer{repository: repository, signaler: signaler, logger: logger}
}

// ApproveBeerRequest optionally carries admin corrections applied together
// with the approval.
type ApproveBeerRequest struct {
	Name        *string  `json:"name"`
	StyleID     *uint    `json:"styleId"`
	ABV         *float64 `json:"abv"`
	IBU         *uint64  `json:"ibu"`
	Description *string  `json:"description"`
}

func (m *ModerationServer) ApproveBeer(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, m.logger, "approve beer", err)
	}

	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var request ApproveBeerRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	edits := &repository.BeerEdits{
		Name:        request.Name,
		StyleID:     request.StyleID,
		ABV:         request.ABV,
		IBU:         request.IBU,
		Description: request.Description,
	}

	beer, err := m.repository.SetBeerStatus(c.Request().Context(), beerID, moderation.StatusApproved, edits, *actor)
	if err != nil {
		return actionError(c, m.logger, "approve beer", err)
	}

	m.revalidate(c, revalidate.PathBeers, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beer": beer})
}

// RejectBeer flips the status only. The submitter is not notified; email
// exists solely in the contact flow.
func (m *ModerationServer) RejectBeer(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, m.logger, "reject beer", err)
	}

	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	beer, err := m.repository.SetBeerStatus(c.Request().Context(), beerID, moderation.StatusRejected, nil, *actor)
	if err != nil {
		return actionError(c, m.logger, "reject beer", err)
	}

	m.revalidate(c, revalidate.PathBeers, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beer": beer})
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetBeerStatus backs the free-choice status field on the admin edit form.
// The transition gate still applies; illegal values never reach the store.
func (m *ModerationServer) SetBeerStatus(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, m.logger, "update beer status", err)
	}

	beerID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var request SetStatusRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	to, err := moderation.ParseStatus(request.Status)
	if err != nil {
		return actionError(c, m.logger, "update beer status", err)
	}

	beer, err := m.repository.SetBeerStatus(c.Request().Context(), beerID, to, nil, *actor)
	if err != nil {
		return actionError(c, m.logger, "update beer status", err)
	}

	m.revalidate(c, revalidate.PathBeers, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "beer": beer})
}

// ApproveStyleRequest promotes a staging request into the canonical style
// table; the two writes commit together in the repository.
func (m *ModerationServer) ApproveStyleRequest(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, m.logger, "approve style request", err)
	}

	requestID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	style, err := m.repository.PromoteStyleRequest(c.Request().Context(), requestID, *actor)
	if err != nil {
		return actionError(c, m.logger, "approve style request", err)
	}

	m.revalidate(c, revalidate.PathStyles, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "style": style})
}

func (m *ModerationServer) RejectStyleRequest(c echo.Context) error {
	actor, err := auth.CurrentUser(c)
	if err != nil {
		return actionError(c, m.logger, "reject style request", err)
	}

	requestID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	request, err := m.repository.SetStyleRequestStatus(c.Request().Context(), requestID, moderation.StatusRejected, *actor)
	if err != nil {
		return actionError(c, m.logger, "reject style request", err)
	}

	m.revalidate(c, revalidate.PathAdminQueue, revalidate.PathDashboard)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "request": request})
}

type SetContactStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	AdminNote string `json:"adminNote"`
}

func (m *ModerationServer) SetContactStatus(c echo.Context) error {
	contactID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var request SetContactStatusRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	to, err := model.ParseContactStatus(request.Status)
	if err != nil {
		return badRequest(c, err.Error())
	}

	contact, err := m.repository.SetContactStatus(c.Request().Context(), contactID, to, request.AdminNote)
	if err != nil {
		return actionError(c, m.logger, "update contact", err)
	}

	m.revalidate(c, revalidate.PathAdminContacts, revalidate.PathDashboard)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "contact": contact})
}

func (m *ModerationServer) ListStyleRequests(c echo.Context) error {
	status, err := parseListStatus(c.QueryParam("status"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := repository.ListFilter{Status: status, Query: c.QueryParam("q")}

	requests, err := m.repository.FindStyleRequests(c.Request().Context(), &filter)
	if err != nil {
		return actionError(c, m.logger, "list style requests", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "requests": requests})
}

// GetContact serves the admin inbox detail view, message body and note
// included.
func (m *ModerationServer) GetContact(c echo.Context) error {
	contactID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	contact, err := m.repository.GetContactByID(c.Request().Context(), contactID)
	if err != nil {
		return actionError(c, m.logger, "get contact", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "contact": contact})
}

func (m *ModerationServer) ListContacts(c echo.Context) error {
	var status *model.ContactStatus

	if value := c.QueryParam("status"); value != "" && value != "all" {
		parsed, err := model.ParseContactStatus(value)
		if err != nil {
			return badRequest(c, err.Error())
		}

		status = &parsed
	}

	contacts, err := m.repository.FindContacts(c.Request().Context(), status, 0, 0)
	if err != nil {
		return actionError(c, m.logger, "list contacts", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "contacts": contacts})
}

func (m *ModerationServer) GetQueueCounts(c echo.Context) error {
	counts, err := m.repository.GetQueueCounts(c.Request().Context())
	if err != nil {
		return actionError(c, m.logger, "load dashboard", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "counts": counts})
}

// GetHistory returns the audit trail of one entity's status transitions.
func (m *ModerationServer) GetHistory(c echo.Context) error {
	entityID, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	entity := model.Entity(c.Param("entity"))

	switch entity {
	case model.EntityBeer, model.EntityBrewery, model.EntityStyle, model.EntityStyleRequest:
	default:
		return badRequest(c, "unknown entity type")
	}

	transitions, err := m.repository.ListTransitions(c.Request().Context(), entity, entityID)
	if err != nil {
		return actionError(c, m.logger, "load history", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "transitions": transitions})
}

func (m *ModerationServer) revalidate(c echo.Context, paths ...string) {
	if err := m.signaler.Revalidate(c.Request().Context(), paths...); err != nil {
		m.logger.Warn("revalidation failed", zap.Error(err))
	}
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
