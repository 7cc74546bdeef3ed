package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/server/services"
)

type ctxKey string

const userUIDKey ctxKey = "userUID"

// AuthMiddleware resolves the Authorization header to a user uid before any
// protected handler runs. The uid travels in the request context; there is
// no process-global current user.
type AuthMiddleware struct {
	auth *services.AuthService
}

func NewAuthMiddleware(auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		apiKey := c.Request().Header.Get(common.APIKeyHeaderName)

		userUID, err := m.auth.Authenticate(c.Request().Context(), apiKey)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrMissingToken):
				return c.JSON(http.StatusBadRequest, errEnvelope("API key is missing"))
			case errors.Is(err, common.ErrInvalidToken):
				return c.JSON(http.StatusUnauthorized, errEnvelope("Access Denied. Invalid API key"))
			default:
				return c.JSON(http.StatusInternalServerError, errEnvelope("An error occurred. Please try again"))
			}
		}

		ctx := context.WithValue(c.Request().Context(), userUIDKey, userUID)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// requesterUID returns the authenticated user's uid placed in the request
// context by RequireUser.
func requesterUID(c echo.Context) string {
	uid, _ := c.Request().Context().Value(userUIDKey).(string)
	return uid
}
