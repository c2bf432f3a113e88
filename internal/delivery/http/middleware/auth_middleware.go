package middleware

import (
	"strings"

	"busquei/internal/delivery/http/response"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/service"
	"busquei/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)

// AuthMiddleware guards routes behind a valid access token. It verifies the
// token, resolves the account behind it and rejects inactive accounts before
// the handler runs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the Bearer access token and loads the current user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return m.unauthorized(c, "UNAUTHENTICATED", "Missing or malformed Authorization header")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Refresh tokens never authorize requests directly.
		if claims.Kind != service.TokenKindAccess {
			return m.unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
		}

		user, err := m.authUC.GetCurrentUser(c.Request().Context(), claims.Subject)
		if err != nil {
			// A verified token whose subject no longer exists is treated the
			// same as a bad token; the response does not reveal which.
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				return m.unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
			}

			return errors.WithStack(err)
		}

		if !user.CanLogin() {
			return response.Forbidden(c, "FORBIDDEN", "Account is deactivated")
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// unauthorized writes a 401 with the Bearer challenge header.
func (m *AuthMiddleware) unauthorized(c echo.Context, errorCode string, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return response.Unauthorized(c, errorCode, message)
}

// extractBearerToken splits an Authorization header into scheme and token.
// The header must be exactly two fields and the scheme compares
// case-insensitively to "Bearer".
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	return parts[1], true
}
