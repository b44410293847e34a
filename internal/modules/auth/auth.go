package auth

import "context"

// SessionUser is the identity returned to the client after login.
type SessionUser struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	CustomerID string `json:"customer_id,omitempty"`
}

// LoginResult carries the signed token and the session identity.
type LoginResult struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
