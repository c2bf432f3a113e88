package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"busquei/internal/delivery/http/middleware"
	"busquei/internal/delivery/http/validator"
	"busquei/internal/domain/entity"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/service"
	mockSvc "busquei/internal/mocks/service"
	mockUC "busquei/internal/mocks/usecase"
	"busquei/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler  *AuthHandler
	uc       *mockUC.MockAuthUsecase
	tokenSvc *mockSvc.MockTokenService
	echo     *echo.Echo
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	uc := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return authHandlerFixtures{
		handler:  NewAuthHandler(uc, tokenSvc, logger),
		uc:       uc,
		tokenSvc: tokenSvc,
		echo:     e,
	}
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sampleUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Name:      "Test User",
		Email:     "test@example.com",
		IsActive:  true,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now(),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := sampleUser()
	fx.uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "Password123",
		}).
		Return(&usecase.RegisterOutput{User: user}, nil)
	fx.tokenSvc.EXPECT().IssueAccessToken(user.ID, map[string]interface{}(nil)).Return("access-token", nil)
	fx.tokenSvc.EXPECT().IssueRefreshToken(user.ID).Return("refresh-token", nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(30 * time.Minute)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com","password":"Password123"}`)

	err := fx.handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var envelope struct {
		Data tokenPairResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "access-token", envelope.Data.AccessToken)
	assert.Equal(t, "refresh-token", envelope.Data.RefreshToken)
	assert.Equal(t, "Bearer", envelope.Data.TokenType)
	assert.Equal(t, int64(1800), envelope.Data.ExpiresIn)
	assert.Equal(t, user.Email, envelope.Data.User.Email)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/auth/register",
		`{"email":"test@example.com"}`)

	err := fx.handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	c, _ := newJSONContext(fx.echo, http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"taken@example.com","password":"Password123"}`)

	err := fx.handler.Register(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := sampleUser()
	fx.uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}).
		Return(&usecase.LoginOutput{User: user}, nil)
	fx.tokenSvc.EXPECT().IssueAccessToken(user.ID, map[string]interface{}(nil)).Return("access-token", nil)
	fx.tokenSvc.EXPECT().IssueRefreshToken(user.ID).Return("refresh-token", nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(30 * time.Minute)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"Password123"}`)

	err := fx.handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data tokenPairResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "access-token", envelope.Data.AccessToken)
	assert.Equal(t, "refresh-token", envelope.Data.RefreshToken)
	assert.Equal(t, "Bearer", envelope.Data.TokenType)
	assert.Equal(t, int64(1800), envelope.Data.ExpiresIn)
	assert.Equal(t, user.Email, envelope.Data.User.Email)
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	c, _ := newJSONContext(fx.echo, http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"WrongPassword"}`)

	err := fx.handler.Login(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := sampleUser()
	claims := &service.Claims{Subject: user.ID, Kind: service.TokenKindRefresh}

	fx.tokenSvc.EXPECT().Verify("refresh-token").Return(claims, nil)
	fx.uc.EXPECT().GetCurrentUser(mock.Anything, user.ID).Return(user, nil)
	fx.tokenSvc.EXPECT().IssueAccessToken(user.ID, map[string]interface{}(nil)).Return("new-access-token", nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(30 * time.Minute)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"refresh-token"}`)

	err := fx.handler.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access-token")
	// The refresh token is not rotated, so it must not be echoed back.
	assert.NotContains(t, rec.Body.String(), "refresh-token")
}

func TestAuthHandler_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthHandler(t)

	claims := &service.Claims{Subject: uuid.New(), Kind: service.TokenKindAccess}
	fx.tokenSvc.EXPECT().Verify("access-token").Return(claims, nil)

	c, _ := newJSONContext(fx.echo, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"access-token"}`)

	err := fx.handler.Refresh(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthHandler_Refresh_InactiveAccount(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := sampleUser()
	user.IsActive = false
	claims := &service.Claims{Subject: user.ID, Kind: service.TokenKindRefresh}

	fx.tokenSvc.EXPECT().Verify("refresh-token").Return(claims, nil)
	fx.uc.EXPECT().GetCurrentUser(mock.Anything, user.ID).Return(user, nil)

	c, _ := newJSONContext(fx.echo, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"refresh-token"}`)

	err := fx.handler.Refresh(c)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAuthHandler_Me_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := sampleUser()
	c, rec := newJSONContext(fx.echo, http.MethodGet, "/auth/me", "")
	c.Set(middleware.ContextKeyUser, user)

	err := fx.handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
}

func TestAuthHandler_UpdateMe_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := sampleUser()
	newName := "Renamed User"
	updated := *user
	updated.Name = newName

	fx.uc.EXPECT().
		UpdateProfile(mock.Anything, user.ID, &usecase.UpdateProfileInput{Name: &newName}).
		Return(&updated, nil)

	c, rec := newJSONContext(fx.echo, http.MethodPut, "/auth/me", `{"name":"Renamed User"}`)
	c.Set(middleware.ContextKeyUserID, user.ID)

	err := fx.handler.UpdateMe(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), newName)
}

func TestAuthHandler_Logout_ReturnsNoContent(t *testing.T) {
	fx := createTestAuthHandler(t)

	userID := uuid.New()
	fx.uc.EXPECT().Logout(mock.Anything, userID).Return(nil)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.ContextKeyUserID, userID)

	err := fx.handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthHandler_Logout_WithoutIdentity(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/auth/logout", "")

	err := fx.handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
