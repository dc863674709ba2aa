package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload captures the data available when minting a session token.
type TokenPayload struct {
	UserID string
	Email  string
}

// SessionClaims represents the typed JWT issued to clients. The claims are
// sufficient to re-look-up the user record; no server-side session state exists.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
