package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/authz"
	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
	"github.com/scoresense/sports-api/internal/pkg/metrics"
)

// Gate enforces the route→role policy on every request. It extracts the
// bearer token (absent means anonymous), lets public routes through, and
// fails closed everywhere else: missing or unverifiable tokens yield
// ErrUnauthenticated, an insufficient role yields ErrForbidden. Validated
// claims are attached to both the echo context and the request context so
// the GraphQL resolvers see the same identity.
func Gate(policy *authz.Policy, tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			access := policy.Decide(c.Request().Method, c.Request().URL.Path)

			claims, err := bearerClaims(c, tokens)
			if err != nil && !access.Public {
				metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}

			if claims != nil {
				c.Set("username", claims.Username)
				c.Set("role", claims.Role)
				c.SetRequest(c.Request().WithContext(
					authz.WithClaims(c.Request().Context(), claims)))
			}

			if access.Public {
				return next(c)
			}
			if claims == nil {
				metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			if !access.Allows(claims.Role) {
				metrics.AuthzDecisionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}

// bearerClaims validates the Authorization header if one is present.
// (nil, nil) means the request is anonymous.
func bearerClaims(c echo.Context, tokens ports.TokenService) (*domain.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrTokenInvalid
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
		} else {
			metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		}
		return nil, err
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return claims, nil
}
