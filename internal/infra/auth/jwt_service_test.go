package auth

import (
	"testing"
	"time"

	"busquei/config"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func newTestJWTConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:     testSecret,
			Algorithm:  "HS256",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestJWTService_IssueAndVerifyAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	subject := uuid.New()

	token, err := svc.IssueAccessToken(subject, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, service.TokenKindAccess, claims.Kind)
	assert.False(t, claims.IssuedAt.IsZero())
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_IssueAndVerifyRefreshToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	subject := uuid.New()

	token, err := svc.IssueRefreshToken(subject)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, service.TokenKindRefresh, claims.Kind)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_ExtraClaims(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	subject := uuid.New()

	token, err := svc.IssueAccessToken(subject, map[string]any{
		"scope": "admin",
		// Reserved claims must not be overridable by callers.
		"sub": "attacker",
	})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, "admin", claims.Extra["scope"])
}

func TestJWTService_SubjectOf(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	subject := uuid.New()
	token, err := svc.IssueAccessToken(subject, nil)
	require.NoError(t, err)

	got, err := svc.SubjectOf(token)
	require.NoError(t, err)
	assert.Equal(t, subject, got)

	_, err = svc.SubjectOf("clearly-not-a-jwt")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_KindMatches(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	subject := uuid.New()
	accessToken, err := svc.IssueAccessToken(subject, nil)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(subject)
	require.NoError(t, err)

	assert.True(t, svc.KindMatches(accessToken, service.TokenKindAccess))
	assert.False(t, svc.KindMatches(accessToken, service.TokenKindRefresh))
	assert.True(t, svc.KindMatches(refreshToken, service.TokenKindRefresh))
	assert.False(t, svc.KindMatches(refreshToken, service.TokenKindAccess))

	// Never errors, just false on anything unverifiable.
	assert.False(t, svc.KindMatches("garbage", service.TokenKindAccess))
	assert.False(t, svc.KindMatches("", service.TokenKindRefresh))
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.AccessTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "abcd"

	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Secret = "another_secret_entirely"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherSvc.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsMissingClaims(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, signErr := token.SignedString([]byte(testSecret))
		require.NoError(t, signErr)

		return signed
	}

	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing subject", jwt.MapClaims{"type": "access", "exp": exp}},
		{"missing kind", jwt.MapClaims{"sub": uuid.New().String(), "exp": exp}},
		{"missing expiry", jwt.MapClaims{"sub": uuid.New().String(), "type": "access"}},
		{"unknown kind", jwt.MapClaims{"sub": uuid.New().String(), "type": "session", "exp": exp}},
		{"malformed subject", jwt.MapClaims{"sub": "not-a-uuid", "type": "access", "exp": exp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verifyErr := svc.Verify(sign(tt.claims))
			assert.True(t, errors.Is(verifyErr, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_VerifyRejectsForeignAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	// Token signed with a different HMAC variant than configured.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: ""}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: "s", Algorithm: "RS256"}})
	assert.Error(t, err)

	svc, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{
		Secret:    "s",
		Algorithm: "HS384",
		AccessTTL: time.Minute,
	}})
	assert.NoError(t, err)
	assert.Equal(t, time.Minute, svc.AccessTokenTTL())
}
