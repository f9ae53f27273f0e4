// Package middleware contains HTTP-specific middleware for the Echo server.
package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyActor = "actor"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the resulting
// actor on the request context. Refresh tokens are rejected here; they are
// only good for the refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}
		if claims.Type != "access" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Access token required")
		}

		actor := usecase.Actor{
			ID:    claims.UserID,
			Roles: entity.RolesFromStrings(claims.Roles),
		}
		c.Set(ContextKeyActor, actor)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor carries a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(ContextKeyActor).(usecase.Actor)
			if !ok {
				return response.Error(c, 403, "PERMISSION_DENIED", "Permission denied: actor information missing", "")
			}

			if !actor.Roles.Contains(requiredRole) {
				return response.Error(c, 403, "PERMISSION_DENIED", "Permission denied: require '"+requiredRole.String()+"' role", "")
			}

			return next(c)
		}
	}
}
