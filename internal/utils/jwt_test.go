package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	m := TokenManager{Secret: []byte("super-secret"), Issuer: "notely", TokenTTL: time.Hour}

	token, expiresIn, err := m.IssueToken("user-123", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, expiresIn)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "notely", claims.Issuer)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	m := TokenManager{Secret: []byte("secret"), TokenTTL: -time.Second}

	token, _, err := m.IssueToken("u1", "u1@x.com")
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := TokenManager{Secret: []byte("right-secret"), TokenTTL: time.Hour}
	token, _, err := issuer.IssueToken("u2", "u2@x.com")
	require.NoError(t, err)

	verifier := TokenManager{Secret: []byte("wrong-secret"), TokenTTL: time.Hour}
	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	m := TokenManager{Secret: []byte("k")}
	_, err := m.ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIssueToken_DefaultTTL(t *testing.T) {
	t.Parallel()

	m := TokenManager{Secret: []byte("k")}
	_, expiresIn, err := m.IssueToken("u3", "u3@x.com")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, expiresIn)
}
