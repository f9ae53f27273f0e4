package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// UserHandler holds dependencies for identity-related handlers.
type UserHandler struct {
	userUC  usecase.UserUsecase
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:  params.UserUC,
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// RegisterRequest represents the request body for email/password registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the request body for email/password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FirebaseLoginRequest represents the request body for Firebase sign-in.
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// RefreshTokenRequest represents the request body for refreshing an access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the email/password login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// FirebaseLogin exchanges a verified Firebase ID token for a local session.
func (h *UserHandler) FirebaseLogin(c echo.Context) error {
	var req FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Firebase login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.LoginWithFirebase(c.Request().Context(), &usecase.FirebaseLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// GetProfile returns the authenticated user's own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// InitializeAdmin grants the ADMIN role to the caller when their email
// matches the configured admin address and no admin exists yet.
func (h *UserHandler) InitializeAdmin(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	user, err := h.adminUC.InitializeAdmin(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.InfoContext(c.Request().Context(), "admin role granted",
		slog.String("user_id", user.ID.String()))

	return response.Success(c, http.StatusOK, user, "Admin role granted successfully")
}
