package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justconnect/justconnect-api/internal/token"
)

const testSecret = "test-secret"

func TestSignVerify_Roundtrip(t *testing.T) {
	signed, err := token.Sign(token.Claims{
		ID:    42,
		Name:  "Ana",
		Role:  "professional",
		Email: "ana@example.com",
	}, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := token.Verify(signed, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "professional", claims.Role)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestVerify_RoleDefaultsToUser(t *testing.T) {
	signed, err := token.Sign(token.Claims{ID: 7, Name: "Bo"}, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := token.Verify(signed, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user", claims.Role)
}

func TestVerify_ExpiredToken(t *testing.T) {
	signed, err := token.Sign(token.Claims{ID: 1}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = token.Verify(signed, testSecret)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := token.Sign(token.Claims{ID: 1}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = token.Verify(signed, "other-secret")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := token.Verify("not.a.token", testSecret)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
