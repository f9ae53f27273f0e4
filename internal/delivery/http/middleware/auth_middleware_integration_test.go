package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) (*AuthMiddleware, func(uuid.UUID, []string) (string, string)) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	issue := func(userID uuid.UUID, roles []string) (string, string) {
		access, refresh, err := tokenSvc.GenerateTokens(userID, roles)
		require.NoError(t, err)

		return access, refresh
	}

	return NewAuthMiddleware(tokenSvc), issue
}

func runAuthenticated(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, usecase.Actor, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotActor usecase.Actor
	var reached bool
	handler := m.Authenticate(func(c echo.Context) error {
		gotActor, _ = c.Get(ContextKeyActor).(usecase.Actor)
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, gotActor, reached
}

func TestAuthMiddleware_Authenticate_ValidAccessToken(t *testing.T) {
	m, issue := newTestTokenService(t)
	userID := uuid.New()
	access, _ := issue(userID, []string{"USER", "ADMIN"})

	rec, actor, reached := runAuthenticated(t, m, "Bearer "+access)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, actor.Roles)
}

func TestAuthMiddleware_Authenticate_RejectsRefreshToken(t *testing.T) {
	m, issue := newTestTokenService(t)
	_, refresh := issue(uuid.New(), []string{"USER"})

	rec, _, reached := runAuthenticated(t, m, "Bearer "+refresh)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _ := newTestTokenService(t)

	rec, _, reached := runAuthenticated(t, m, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	m, issue := newTestTokenService(t)
	access, _ := issue(uuid.New(), []string{"USER"})

	rec, _, reached := runAuthenticated(t, m, access) // no Bearer prefix

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, issue := newTestTokenService(t)

	run := func(roles []string) *httptest.ResponseRecorder {
		access, _ := issue(uuid.New(), roles)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := m.Authenticate(m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
		require.NoError(t, handler(c))

		return rec
	}

	assert.Equal(t, http.StatusOK, run([]string{"USER", "ADMIN"}).Code)
	assert.Equal(t, http.StatusForbidden, run([]string{"USER"}).Code)
}
