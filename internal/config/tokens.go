package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens signs and verifies the anonymous session token handed out when
// a game is created. The token ties a browser to its own session; there
// are no player accounts.
type Tokens struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

// SessionClaims identify a single game session.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func NewSessionClaims(sessionID int64, lifetime time.Duration) *SessionClaims {
	return &SessionClaims{
		SessionID: strconv.FormatInt(sessionID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		},
	}
}

func NewTokens() (*Tokens, error) {
	secret, ok := os.LookupEnv("SESSION_SECRET")
	if !ok {
		return nil, fmt.Errorf("no SESSION_SECRET env variable set")
	}

	lifetime := time.Hour * 24
	if lifetimeStr, ok := os.LookupEnv("SESSION_LIFETIME"); ok {
		parsed, err := time.ParseDuration(lifetimeStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse SESSION_LIFETIME: %w", err)
		}
		lifetime = parsed
	}

	t := &Tokens{
		secret:        []byte(secret),
		signingMethod: jwt.GetSigningMethod("HS256"),
		tokenLifetime: lifetime,
	}

	return t, nil
}

func (t *Tokens) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(t.signingMethod, claims).SignedString(t.secret)
}

// Issue sets the session cookie for a freshly created game.
func (t *Tokens) Issue(w http.ResponseWriter, sessionID int64) error {
	claims := NewSessionClaims(sessionID, t.tokenLifetime)
	token, err := t.Sign(claims)
	if err != nil {
		return fmt.Errorf("unable to sign session token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Path:     "/",
		Value:    token,
		Expires:  time.Now().Add(t.tokenLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear drops the session cookie.
func (t *Tokens) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ParseSessionClaims extracts and verifies the session claims carried by
// a request.
func (t *Tokens) ParseSessionClaims(r *http.Request) (*SessionClaims, error) {
	cookie, err := r.Cookie("session")
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(
		cookie.Value,
		&SessionClaims{},
		func(tok *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{t.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
