package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for product, category and carousel handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a
// product. Field-level validation lives in the usecase so violations are
// reported in a stable order. Price and StockQuantity are pointers so a
// body that omits them is distinguishable from an explicit zero.
type ProductRequest struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         *float64   `json:"price"`
	StockQuantity *int       `json:"stockQuantity"`
	MainImageURL  string     `json:"mainImageUrl"`
	CategoryID    *uuid.UUID `json:"categoryId"`
	Featured      bool       `json:"featured"`
}

// CategoryRequest represents the request body for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CarouselImageRequest represents the request body for carousel image writes.
// Optional fields are pointers so that absent and zero-valued inputs can be
// told apart.
type CarouselImageRequest struct {
	ImageURL     string  `json:"imageUrl"`
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	DisplayOrder *int    `json:"displayOrder"`
	Active       *bool   `json:"active"`
}

// ListProducts returns the full catalog, newest first.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// SearchProducts filters, sorts and paginates the catalog from query parameters.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	input := &usecase.SearchProductsInput{
		Query:  c.QueryParam("q"),
		SortBy: c.QueryParam("sortBy"),
	}

	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
		}
		input.CategoryID = &categoryID
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid minPrice")
		}
		input.MinPrice = &minPrice
	}

	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid maxPrice")
		}
		input.MaxPrice = &maxPrice
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid page")
		}
		input.Page = page
	}

	if raw := c.QueryParam("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid pageSize")
		}
		input.PageSize = pageSize
	}

	output, err := h.catalogUC.SearchProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// GetProduct returns a single product by ID.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct handles product creation by an administrator.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), actor, productInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles a full product overwrite by an administrator.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), actor, id, productInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles product deletion by an administrator.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

// ListCategories returns all categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// CreateCategory handles category creation by an administrator.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), actor, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles category update by an administrator.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), actor, id, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles category deletion by an administrator. Products
// referencing the category keep their dangling reference.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted"}, "Category deleted successfully")
}

// ListCarouselImages returns carousel images ordered for display.
func (h *CatalogHandler) ListCarouselImages(c echo.Context) error {
	images, err := h.catalogUC.ListCarouselImages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images, "Carousel images retrieved successfully")
}

// CreateCarouselImage handles carousel image creation by an administrator.
func (h *CatalogHandler) CreateCarouselImage(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	var req CarouselImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid carousel image input")
	}

	image, err := h.catalogUC.CreateCarouselImage(c.Request().Context(), actor, carouselInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Carousel image created successfully")
}

// UpdateCarouselImage handles carousel image update by an administrator.
func (h *CatalogHandler) UpdateCarouselImage(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req CarouselImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid carousel image input")
	}

	image, err := h.catalogUC.UpdateCarouselImage(c.Request().Context(), actor, id, carouselInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, image, "Carousel image updated successfully")
}

// DeleteCarouselImage handles carousel image deletion by an administrator.
func (h *CatalogHandler) DeleteCarouselImage(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCarouselImage(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Carousel image deleted"}, "Carousel image deleted successfully")
}

func productInput(req *ProductRequest) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		MainImageURL:  req.MainImageURL,
		CategoryID:    req.CategoryID,
		Featured:      req.Featured,
	}
}

func carouselInput(req *CarouselImageRequest) *usecase.CarouselImageInput {
	return &usecase.CarouselImageInput{
		ImageURL:     req.ImageURL,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	}
}
