package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("a@x.com", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := GetEmailFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestGetEmailFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("a@x.com", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = GetEmailFromToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestGetEmailFromToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("a@x.com", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetEmailFromToken(token, secret)
	assert.Error(t, err)
}
