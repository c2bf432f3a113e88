package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes the two token flavours issued by the service.
// A token carries exactly one kind, and an operation expecting one kind
// must never accept the other.
type TokenKind string

const (
	// TokenKindAccess is a short-lived credential authorizing requests.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh is a long-lived credential used only to obtain new
	// access tokens.
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the verified content of a token.
type Claims struct {
	Subject   uuid.UUID      // The user this token asserts.
	Kind      TokenKind      // access or refresh.
	IssuedAt  time.Time      // When the token was created.
	ExpiresAt time.Time      // When the token stops being accepted.
	Extra     map[string]any // Additional claims embedded at issue time.
}

// TokenService defines the interface for issuing and verifying signed, expiring
// tokens. Tokens are self-contained: verification needs only the signing secret
// and the clock, never server-side state.
type TokenService interface {
	// IssueAccessToken creates a short-lived access token for a user.
	// Extra claims, if any, are embedded alongside the registered ones.
	IssueAccessToken(subject uuid.UUID, extraClaims map[string]any) (string, error)

	// IssueRefreshToken creates a long-lived refresh token for a user.
	IssueRefreshToken(subject uuid.UUID) (string, error)

	// Verify checks the token's signature, structure and expiry in one pass
	// and returns its claims. Any signature mismatch, decoding failure,
	// missing required claim or passed expiry fails with ErrInvalidToken.
	Verify(tokenString string) (*Claims, error)

	// SubjectOf verifies the token and returns its subject.
	SubjectOf(tokenString string) (uuid.UUID, error)

	// KindMatches reports whether the token verifies and carries the expected
	// kind. It never errors; any verification failure is false.
	KindMatches(tokenString string, kind TokenKind) bool

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
