package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Gate middleware.
// Presence of a role proves the gate ran and admitted the request.
func ctxClaims(c echo.Context) (username, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", domain.ErrUnauthenticated
	}
	username, _ = c.Get("username").(string)
	return username, role, nil
}
