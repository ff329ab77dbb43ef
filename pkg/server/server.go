// Package server holds the HTTP action handlers behind the public
// submission forms and the admin console. Every mutating endpoint answers
// the uniform {success, error} envelope; the UI branches on success and
// shows error verbatim.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
)

type ActionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// actionError maps the sentinel taxonomy to an HTTP status and a
// user-facing message. Unclassified store failures are logged with the
// original error and reported generically.
func actionError(c echo.Context, logger *zap.Logger, operation string, err error) error {
	var status int

	message := err.Error()

	switch {
	case errors.Is(err, repository.ErrDuplicateName), errors.Is(err, repository.ErrStillReferenced):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, moderation.ErrAdminRequired), errors.Is(err, repository.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, moderation.ErrIllegalTransition), errors.Is(err, moderation.ErrUnknownStatus):
		status = http.StatusUnprocessableEntity
	default:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			status = http.StatusBadRequest

			break
		}

		logger.Error("action failed", zap.String("operation", operation), zap.Error(err))

		status = http.StatusInternalServerError
		message = "failed to " + operation
	}

	return c.JSON(status, ActionResult{Success: false, Error: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ActionResult{Success: false, Error: message})
}

// parseListStatus interprets the admin console status filter; "all" and ""
// mean no filtering.
func parseListStatus(value string) (*moderation.Status, error) {
	if value == "" || value == "all" {
		return nil, nil //nolint:nilnil // absence of a filter
	}

	status, err := moderation.ParseStatus(value)
	if err != nil {
		return nil, err
	}

	return &status, nil
}
