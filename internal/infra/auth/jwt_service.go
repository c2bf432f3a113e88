// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"busquei/config"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/service"
)

// Claims recognised by the service besides the registered JWT set.
const claimTokenType = "type"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with a single shared HMAC secret; the algorithm is configurable
// but restricted to the HMAC family.
type jwtService struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method := jwt.GetSigningMethod(cfg.JWT.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q, must be HMAC-family", cfg.JWT.Algorithm)
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		method:     method,
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
	}, nil
}

// IssueAccessToken creates a short-lived access token for the given user.
func (s *jwtService) IssueAccessToken(subject uuid.UUID, extraClaims map[string]any) (string, error) {
	return s.issueToken(subject, service.TokenKindAccess, s.accessTTL, extraClaims)
}

// IssueRefreshToken creates a long-lived refresh token for the given user.
// Refresh tokens never carry extra claims.
func (s *jwtService) IssueRefreshToken(subject uuid.UUID) (string, error) {
	return s.issueToken(subject, service.TokenKindRefresh, s.refreshTTL, nil)
}

// Verify checks signature, structure and expiry in a single pass. Expiry is
// enforced here unconditionally so no caller can accept a stale token by
// skipping a separate check.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			// Reject any token whose header names a different algorithm,
			// including "none".
			if token.Method.Alg() != s.method.Alg() {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "unexpected claims format")
	}

	return s.buildClaims(mapClaims)
}

// SubjectOf verifies the token and returns its subject.
func (s *jwtService) SubjectOf(tokenString string) (uuid.UUID, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	return claims.Subject, nil
}

// KindMatches reports whether the token verifies and is of the expected kind.
func (s *jwtService) KindMatches(tokenString string, kind service.TokenKind) bool {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return false
	}

	return claims.Kind == kind
}

// AccessTokenTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// issueToken is a private helper to create a JWT with specific claims.
func (s *jwtService) issueToken(subject uuid.UUID, kind service.TokenKind, ttl time.Duration, extraClaims map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          subject.String(),
		"iat":          now.Unix(),
		"exp":          now.Add(ttl).Unix(),
		claimTokenType: string(kind),
	}

	for key, value := range extraClaims {
		// Registered claims win over caller-supplied ones.
		if _, reserved := claims[key]; reserved {
			continue
		}
		claims[key] = value
	}

	token := jwt.NewWithClaims(s.method, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// buildClaims validates structural presence of the required claims and maps
// the remainder into Extra.
func (s *jwtService) buildClaims(mapClaims jwt.MapClaims) (*service.Claims, error) {
	subjectStr, err := mapClaims.GetSubject()
	if err != nil || subjectStr == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is missing subject")
	}

	subject, err := uuid.Parse(subjectStr)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject is not a valid id")
	}

	kindStr, ok := mapClaims[claimTokenType].(string)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is missing kind")
	}

	kind := service.TokenKind(kindStr)
	if kind != service.TokenKindAccess && kind != service.TokenKindRefresh {
		return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "unknown token kind %q", kindStr)
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is missing expiry")
	}

	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token issued-at is malformed")
	}

	claims := &service.Claims{
		Subject:   subject,
		Kind:      kind,
		ExpiresAt: expiresAt.Time,
	}
	if issuedAt != nil {
		claims.IssuedAt = issuedAt.Time
	}

	for key, value := range mapClaims {
		switch key {
		case "sub", "iat", "exp", claimTokenType:
			continue
		}
		if claims.Extra == nil {
			claims.Extra = make(map[string]any)
		}
		claims.Extra[key] = value
	}

	return claims, nil
}
