package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busquei/internal/domain/entity"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/service"
	mockUC "busquei/internal/mocks/usecase"

	mockSvc "busquei/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService, *mockUC.MockAuthUsecase) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthMiddleware(tokenSvc, authUC), tokenSvc, authUC
}

func doAuthRequest(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, c, nextCalled
}

func activeUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "test@example.com",
		IsActive: true,
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	m, tokenSvc, authUC := setupAuthTest(t)

	user := activeUser()
	claims := &service.Claims{
		Subject:   user.ID,
		Kind:      service.TokenKindAccess,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	tokenSvc.EXPECT().Verify("valid-token").Return(claims, nil)
	authUC.EXPECT().GetCurrentUser(mock.Anything, user.ID).Return(user, nil)

	rec, c, nextCalled := doAuthRequest(t, m, "Bearer valid-token")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, c.Get(ContextKeyUserID))
	assert.Equal(t, user, c.Get(ContextKeyUser))
}

func TestAuthMiddleware_Authenticate_SchemeIsCaseInsensitive(t *testing.T) {
	m, tokenSvc, authUC := setupAuthTest(t)

	user := activeUser()
	claims := &service.Claims{Subject: user.ID, Kind: service.TokenKindAccess}

	tokenSvc.EXPECT().Verify("valid-token").Return(claims, nil)
	authUC.EXPECT().GetCurrentUser(mock.Anything, user.ID).Return(user, nil)

	_, _, nextCalled := doAuthRequest(t, m, "BEARER valid-token")

	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme", header: "just-a-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := setupAuthTest(t)

			rec, _, nextCalled := doAuthRequest(t, m, tt.header)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	m, tokenSvc, _ := setupAuthTest(t)

	tokenSvc.EXPECT().Verify("bad-token").Return(nil, errors.New("signature mismatch"))

	rec, _, nextCalled := doAuthRequest(t, m, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthMiddleware_Authenticate_RejectsRefreshToken(t *testing.T) {
	m, tokenSvc, _ := setupAuthTest(t)

	claims := &service.Claims{Subject: uuid.New(), Kind: service.TokenKindRefresh}
	tokenSvc.EXPECT().Verify("refresh-token").Return(claims, nil)

	rec, _, nextCalled := doAuthRequest(t, m, "Bearer refresh-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_UnknownSubject(t *testing.T) {
	m, tokenSvc, authUC := setupAuthTest(t)

	userID := uuid.New()
	claims := &service.Claims{Subject: userID, Kind: service.TokenKindAccess}

	tokenSvc.EXPECT().Verify("orphan-token").Return(claims, nil)
	authUC.EXPECT().GetCurrentUser(mock.Anything, userID).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

	rec, _, nextCalled := doAuthRequest(t, m, "Bearer orphan-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RepositoryFailureSurfaces(t *testing.T) {
	m, tokenSvc, authUC := setupAuthTest(t)

	userID := uuid.New()
	claims := &service.Claims{Subject: userID, Kind: service.TokenKindAccess}
	repoErr := errors.New("connection refused")

	tokenSvc.EXPECT().Verify("valid-token").Return(claims, nil)
	authUC.EXPECT().GetCurrentUser(mock.Anything, userID).Return(nil, repoErr)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return nil
	}

	err := m.Authenticate(next)(c)

	// Infrastructure failure is not an authentication failure; the error is
	// returned for the error handler to map, not masked as a 401.
	require.Error(t, err)
	assert.True(t, errors.Is(err, repoErr))
	assert.False(t, nextCalled)
	assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthMiddleware_Authenticate_InactiveAccount(t *testing.T) {
	m, tokenSvc, authUC := setupAuthTest(t)

	user := activeUser()
	user.IsActive = false
	claims := &service.Claims{Subject: user.ID, Kind: service.TokenKindAccess}

	tokenSvc.EXPECT().Verify("valid-token").Return(claims, nil)
	authUC.EXPECT().GetCurrentUser(mock.Anything, user.ID).Return(user, nil)

	rec, _, nextCalled := doAuthRequest(t, m, "Bearer valid-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{name: "lowercase scheme", header: "bearer token", wantToken: "token", wantOK: true},
		{name: "empty", header: "", wantOK: false},
		{name: "scheme only", header: "Bearer", wantOK: false},
		{name: "extra parts", header: "Bearer a b", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := extractBearerToken(tt.header)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
