package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"busquei/internal/delivery/http/response"
	domainerrors "busquei/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_DomainError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
}

func TestErrorMiddleware_UnauthorizedSetsChallenge(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

// Unrecognized errors must not leak internals to the client.
func TestErrorMiddleware_UnknownErrorBecomesOpaque500(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
