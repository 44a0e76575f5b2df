package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedCookie(t *testing.T, tokens *Tokens, sessionID int64) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, tokens.Issue(w, sessionID))
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestTokensRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	tokens, err := NewTokens()
	require.NoError(t, err)

	cookie := issuedCookie(t, tokens, 42)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)

	claims, err := tokens.ParseSessionClaims(r)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.SessionID)
}

func TestTokensRejectForeignSignature(t *testing.T) {
	t.Setenv("SESSION_SECRET", "one secret")
	signer, err := NewTokens()
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "another secret")
	verifier, err := NewTokens()
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(issuedCookie(t, signer, 1))

	_, err = verifier.ParseSessionClaims(r)
	assert.Error(t, err)
}

func TestNewTokensRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "placeholder")
	os.Unsetenv("SESSION_SECRET")

	_, err := NewTokens()
	assert.Error(t, err)
}

func TestNewTokensRejectsBadLifetime(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_LIFETIME", "not a duration")

	_, err := NewTokens()
	assert.Error(t, err)
}
