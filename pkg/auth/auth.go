// Package auth validates tokens issued by the hosted auth provider and
// resolves them to local user rows. Sessions themselves are the provider's
// concern; this package only consumes the resulting JWTs.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/configs"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/repository"
)

const userContextKey = "hoplog.user"

var (
	ErrAuthRequired  = errors.New("authentication required")
	ErrAdminRequired = errors.New("admin privileges required")
)

type Manager struct {
	conf   *configs.Config
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, users repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

// Authenticate resolves the bearer token to a local user and stores it on
// the request context. Identities seen for the first time are provisioned
// with the default role. Requests without a valid token pass through
// anonymous; handlers that need identity call CurrentUser.
func (a *Manager) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := a.extractTokenFromHeader(c.Request().Header)
			if err != nil {
				return next(c)
			}

			claims, err := a.parseClaims(*token)
			if err != nil {
				a.logger.Error("error parsing token", zap.Error(err))

				return next(c)
			}

			email, found := claims["email"].(string)
			if !found {
				a.logger.Error("unable to get user identity from token", zap.Any("claims", claims))

				return next(c)
			}

			username, _ := claims["name"].(string)
			if username == "" {
				username = email[:strings.Index(email+"@", "@")]
			}

			user, err := a.users.EnsureUser(c.Request().Context(), username, email)
			if err != nil {
				a.logger.Error("error resolving user", zap.String("email", email), zap.Error(err))

				return next(c)
			}

			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

// RequireUser aborts the request when no identity was resolved. The JSON
// body carries a login redirect signal for the submission forms.
func (a *Manager) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := CurrentUser(c); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success":  false,
					"error":    ErrAuthRequired.Error(),
					"redirect": "/login",
				})
			}

			return next(c)
		}
	}
}

// RequireAdmin gates the moderation console. It is the single place the
// admin check lives; individual handlers never re-implement it.
func (a *Manager) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   ErrAuthRequired.Error(),
				})
			}

			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"error":   ErrAdminRequired.Error(),
				})
			}

			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Authenticate for this request.
func CurrentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(userContextKey).(*model.User)
	if !ok || user == nil {
		return nil, ErrAuthRequired
	}

	return user, nil
}

// SetCurrentUser injects an identity directly; tests use it in place of the
// full token round trip.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(userContextKey, user)
}

func (a *Manager) parseClaims(accessToken string) (jwt.MapClaims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return nil, err
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return nil, ErrAuthRequired
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, errors.New("authorization format must be Bearer {token}")
	}

	return &token, nil
}
