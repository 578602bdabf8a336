package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when a well-formed token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when a token fails signature or structural checks.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims represents the JWT payload carried by access tokens. Subject holds
// the user email, ID the token id used for revocation.
type Claims struct {
	UserID                string `json:"user_id"`
	FullName              string `json:"full_name"`
	Role                  string `json:"role"`
	IsVerified            bool   `json:"is_verified"`
	IsOnboardingCompleted bool   `json:"is_onboarding_completed"`
	jwt.RegisteredClaims
}

// JWTService signs and validates access tokens with a process-wide secret.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service. The ttl is the default access token
// lifetime used when a caller does not override it.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// GenerateAccessToken signs a token for the identity. A zero ttl uses the
// service default.
func (s *JWTService) GenerateAccessToken(identity Identity, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.ttl
	}
	now := time.Now()
	claims := &Claims{
		UserID:                identity.ID,
		FullName:              identity.FullName,
		Role:                  string(identity.Role),
		IsVerified:            identity.IsVerified,
		IsOnboardingCompleted: identity.IsOnboardingCompleted,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims. An
// unverified payload is never trusted: claims come back only when the token
// is fully valid.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
