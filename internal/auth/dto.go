package auth

import "github.com/riftbounddb/backend/internal/users"

// RegisterRequest contains the payload required to create an account. The
// email is not format-checked here: the service trims and lower-cases it, and
// padded variants of an existing address must reach the conflict path.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest contains the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Result is what register and login hand back to the HTTP layer: the signed
// session token plus the public user view.
type Result struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}
