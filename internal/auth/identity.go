package auth

import (
	"context"
	"time"

	apperrors "lagtalk/internal/errors"
)

// Identity is the authenticated actor derived from a valid token for the
// duration of one request. It is never mutated; claim-affecting changes
// (role transition, email verification) issue a fresh token instead.
type Identity struct {
	ID                    string
	Email                 string
	FullName              string
	Role                  Role
	IsVerified            bool
	IsOnboardingCompleted bool

	// TokenID and ExpiresAt identify the bearer token the identity was
	// resolved from, so logout can revoke it for its remaining lifetime.
	TokenID   string
	ExpiresAt time.Time
}

// Resolver turns bearer tokens into identities. It is stateless apart from
// the signing secret and safe for concurrent use.
type Resolver struct {
	jwt    *JWTService
	tokens TokenStoreInterface
}

// NewResolver creates a resolver backed by the given codec and revocation store.
func NewResolver(jwt *JWTService, tokens TokenStoreInterface) *Resolver {
	return &Resolver{jwt: jwt, tokens: tokens}
}

// ResolveToken validates a raw token and builds the request identity.
// Expired, malformed and revoked tokens all surface as ErrInvalidToken;
// a signed token whose claims lack subject or user id surfaces as
// ErrUserNotFound since that signals an issuance bug, not a client mistake.
func (r *Resolver) ResolveToken(ctx context.Context, tokenString string) (*Identity, error) {
	claims, err := r.jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == "" {
		return nil, apperrors.ErrUserNotFound
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ID != "" {
		revoked, err := r.tokens.IsTokenRevoked(ctx, claims.ID)
		if err == nil && revoked {
			return nil, apperrors.ErrInvalidToken
		}
	}

	identity := &Identity{
		ID:                    claims.UserID,
		Email:                 claims.Subject,
		FullName:              claims.FullName,
		Role:                  role,
		IsVerified:            claims.IsVerified,
		IsOnboardingCompleted: claims.IsOnboardingCompleted,
		TokenID:               claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
