// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	ReviewHandler   *handler.ReviewHandler
	QuestionHandler *handler.QuestionHandler
	OrderHandler    *handler.OrderHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	reviewHandler   *handler.ReviewHandler
	questionHandler *handler.QuestionHandler
	orderHandler    *handler.OrderHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		reviewHandler:   params.ReviewHandler,
		questionHandler: params.QuestionHandler,
		orderHandler:    params.OrderHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Catalog reads, reviews and questions are public; every mutation goes
// through Authenticate and the admin surface additionally requires the
// ADMIN role. Client-side checks carry no weight here.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/login/firebase", r.userHandler.FirebaseLogin)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Public storefront reads
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/search", r.catalogHandler.SearchProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/carousel", r.catalogHandler.ListCarouselImages)
	e.GET("/products/:productId/comments", r.reviewHandler.ListComments)
	e.GET("/products/:productId/questions", r.questionHandler.ListQuestions)

	// Helpful votes and reports need no account
	e.POST("/questions/:id/helpful", r.questionHandler.VoteHelpful)
	e.POST("/questions/:id/report", r.questionHandler.Report)

	// Review and question writes require a signed-in user
	reviewGroup := e.Group("")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("/products/:productId/comments", r.reviewHandler.AddComment)
		reviewGroup.PUT("/comments/:id", r.reviewHandler.UpdateComment)
		reviewGroup.DELETE("/comments/:id", r.reviewHandler.DeleteComment)
		reviewGroup.POST("/comments/:commentId/replies", r.reviewHandler.AddReply)
		reviewGroup.PUT("/replies/:id", r.reviewHandler.UpdateReply)
		reviewGroup.DELETE("/replies/:id", r.reviewHandler.DeleteReply)

		reviewGroup.POST("/products/:productId/questions", r.questionHandler.AskQuestion)
		reviewGroup.DELETE("/questions/:id", r.questionHandler.DeleteQuestion)
	}

	// Order routes
	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Admin routes: one-time role bootstrap plus the catalog and
	// moderation surface
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.POST("/initialize", r.userHandler.InitializeAdmin)

	adminOnly := adminGroup.Group("")
	adminOnly.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminOnly.POST("/products", r.catalogHandler.CreateProduct)
		adminOnly.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminOnly.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminOnly.POST("/categories", r.catalogHandler.CreateCategory)
		adminOnly.PUT("/categories/:id", r.catalogHandler.UpdateCategory)
		adminOnly.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		adminOnly.POST("/carousel", r.catalogHandler.CreateCarouselImage)
		adminOnly.PUT("/carousel/:id", r.catalogHandler.UpdateCarouselImage)
		adminOnly.DELETE("/carousel/:id", r.catalogHandler.DeleteCarouselImage)

		adminOnly.POST("/comments/:id/star", r.reviewHandler.ToggleStarred)
		adminOnly.POST("/questions/:id/answer", r.questionHandler.AnswerQuestion)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
