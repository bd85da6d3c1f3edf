package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateAccessToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"))

	token, err := issuer.IssueAccessToken("alice", "user-1", 300)
	require.NoError(t, err)

	username, userID, err := issuer.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "user-1", userID)
}

func TestIssueAndValidateRefreshToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"))

	token, err := issuer.IssueRefreshToken("alice", "user-1", 86400)
	require.NoError(t, err)

	username, userID, err := issuer.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "user-1", userID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"))

	access, err := issuer.IssueAccessToken("alice", "user-1", 300)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken("alice", "user-1", 86400)
	require.NoError(t, err)

	_, _, err = issuer.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, _, err = issuer.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"))

	token, err := issuer.IssueAccessToken("alice", "user-1", -10)
	require.NoError(t, err)

	_, _, err = issuer.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"))
	other := NewTokenIssuer([]byte("another-secret"))

	token, err := issuer.IssueAccessToken("alice", "user-1", 300)
	require.NoError(t, err)

	_, _, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"))

	_, _, err := issuer.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}
