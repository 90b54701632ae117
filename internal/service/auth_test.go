package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_RoundTrip(t *testing.T) {
	s := NewJWTService("test-secret")

	token, err := s.GenerateAccessToken("operator-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", claims.Operator)
}

func TestJWTService_RejectsForeignToken(t *testing.T) {
	issuer := NewJWTService("secret-a")
	validator := NewJWTService("secret-b")

	token, err := issuer.GenerateAccessToken("operator-1")
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	s := NewJWTService("test-secret")
	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := NewAuthService(NewJWTService("test-secret"), string(hash))

	token, err := auth.Login("admin", "correct-password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = auth.Login("admin", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_DisabledWithoutHash(t *testing.T) {
	auth := NewAuthService(NewJWTService("test-secret"), "")
	_, err := auth.Login("admin", "any")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
