package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newCatalogTestContext(t, "/health")

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

// Query parameter parsing is rejected before the usecase is touched, so a
// zero-value handler is enough here.
func TestCatalogHandler_SearchProducts_InvalidQueryParams(t *testing.T) {
	h := &CatalogHandler{}

	cases := []struct {
		name   string
		target string
	}{
		{name: "BadMinPrice", target: "/products/search?minPrice=cheap"},
		{name: "BadMaxPrice", target: "/products/search?maxPrice=12,50"},
		{name: "BadPage", target: "/products/search?page=first"},
		{name: "BadPageSize", target: "/products/search?pageSize=all"},
		{name: "BadCategoryID", target: "/products/search?categoryId=not-a-uuid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newCatalogTestContext(t, tc.target)

			require.NoError(t, h.SearchProducts(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// A malformed ID must surface as an error for the central HTTPErrorHandler
// and stop the handler before it touches the usecase; the zero-value handler
// would panic if execution continued past the parse.
func TestCatalogHandler_GetProduct_InvalidID(t *testing.T) {
	h := &CatalogHandler{}

	c, rec := newCatalogTestContext(t, "/products/oops")
	c.SetParamNames("id")
	c.SetParamValues("oops")

	err := h.GetProduct(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.False(t, c.Response().Committed, "response is written by the error handler, not the handler")
	assert.Empty(t, rec.Body.String())
}

// Without an authenticated actor on the context the handler must bail out
// with UNAUTHENTICATED instead of calling into the usecase.
func TestCatalogHandler_CreateProduct_MissingActor(t *testing.T) {
	h := &CatalogHandler{}

	c, _ := newCatalogTestContext(t, "/admin/products")

	err := h.CreateProduct(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
