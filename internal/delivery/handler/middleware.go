package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/MounTainVSCO/oceans-api/internal/infrastructure"
)

const (
	userIdContextKey = "user_id"
	authCookieName   = "oceans_jwt"
)

// RequireAuth rejects requests without a valid access token and stores the
// authenticated user id in the request context.
func RequireAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			userId, err := jwtService.VerifyAccess(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userIdContextKey, userId)
			return next(c)
		}
	}
}

// OptionalAuth resolves the actor when a token is present but lets anonymous
// requests through. Used on public site reads.
func OptionalAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokenString := extractToken(c); tokenString != "" {
				if userId, err := jwtService.VerifyAccess(tokenString); err == nil {
					c.Set(userIdContextKey, userId)
				}
			}
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Cookie fallback for browser clients.
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// actorId returns the authenticated user id, or uuid.Nil for anonymous
// requests behind OptionalAuth.
func actorId(c echo.Context) uuid.UUID {
	if userId, ok := c.Get(userIdContextKey).(uuid.UUID); ok {
		return userId
	}
	return uuid.Nil
}
