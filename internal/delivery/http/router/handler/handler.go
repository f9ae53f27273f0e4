// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getActor extracts the authenticated actor placed on the context by the
// auth middleware. The returned error propagates to the central
// HTTPErrorHandler, which writes the response; callers must stop on it.
func getActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := c.Get(middleware.ContextKeyActor).(usecase.Actor)
	if !ok {
		return usecase.Actor{}, errors.Wrap(domainerrors.ErrUnauthenticated, "actor missing from request context")
	}

	return actor, nil
}

// parseIDParam parses the ":id" path parameter as a UUID. As with getActor,
// the failure surfaces through the central HTTPErrorHandler.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("id"), "invalid resource ID")
	}

	return id, nil
}
