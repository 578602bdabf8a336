package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() Identity {
	return Identity{
		ID:         "3f1f0a52-4a5e-4f0e-9a3c-0f6d5c1b2a3d",
		Email:      "ada@unilag.edu.ng",
		FullName:   "Ada Obi",
		Role:       RoleStudent,
		IsVerified: true,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken(testIdentity(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "ada@unilag.edu.ng", claims.Subject)
	assert.Equal(t, "3f1f0a52-4a5e-4f0e-9a3c-0f6d5c1b2a3d", claims.UserID)
	assert.Equal(t, "Ada Obi", claims.FullName)
	assert.Equal(t, string(RoleStudent), claims.Role)
	assert.True(t, claims.IsVerified)
	assert.NotEmpty(t, claims.ID, "token id must be set for revocation")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken(testIdentity(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken(testIdentity(), 0)
	require.NoError(t, err)

	// flip one character in the signature
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'a' {
		tampered[last] = 'b'
	} else {
		tampered[last] = 'a'
	}

	_, err = svc.ValidateToken(string(tampered))
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	token, err := svc.GenerateAccessToken(testIdentity(), 0)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	first, err := svc.GenerateAccessToken(testIdentity(), 0)
	require.NoError(t, err)
	second, err := svc.GenerateAccessToken(testIdentity(), 0)
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
