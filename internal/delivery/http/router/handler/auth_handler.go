// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"busquei/internal/delivery/http/middleware"
	"busquei/internal/delivery/http/response"
	"busquei/internal/domain/entity"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/service"
	"busquei/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
}

// userResponse is the public view of a user. The password hash has no field
// here and can never leak into a response.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// tokenPairResponse is the payload shared by registration and login: the
// user together with a freshly issued access/refresh token pair.
type tokenPairResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"` // Access token lifetime in seconds.
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

const tokenTypeBearer = "Bearer"

func (h *AuthHandler) issueTokenPair(user *entity.User) (tokenPairResponse, error) {
	accessToken, err := h.tokenSvc.IssueAccessToken(user.ID, nil)
	if err != nil {
		return tokenPairResponse{}, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := h.tokenSvc.IssueRefreshToken(user.ID)
	if err != nil {
		return tokenPairResponse{}, errors.Wrap(err, "failed to issue refresh token")
	}

	return tokenPairResponse{
		User:         toUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(h.tokenSvc.AccessTokenTTL().Seconds()),
	}, nil
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Name, email and password are required")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload, err := h.issueTokenPair(output.User)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, payload, "User registered successfully")
}

// Login verifies credentials and issues a fresh access/refresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload, err := h.issueTokenPair(output.User)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, payload, "Login successful")
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself is not rotated.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Refresh token is required")
	}

	claims, err := h.tokenSvc.Verify(req.RefreshToken)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}
	if claims.Kind != service.TokenKindRefresh {
		return errors.Wrap(domainerrors.ErrInvalidToken, "token is not a refresh token")
	}

	user, err := h.uc.GetCurrentUser(c.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidToken, "could not validate credentials")
	}
	if !user.CanLogin() {
		return errors.WithStack(domainerrors.ErrAccountInactive)
	}

	accessToken, err := h.tokenSvc.IssueAccessToken(user.ID, nil)
	if err != nil {
		return errors.Wrap(err, "failed to issue access token")
	}

	return response.Success(c, http.StatusOK, refreshResponse{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(h.tokenSvc.AccessTokenTTL().Seconds()),
	}, "Token refreshed successfully")
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateMe applies partial profile changes to the authenticated user.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// Logout acknowledges the client-side session teardown with no body.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
