package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/georgemunganga/crm-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims is the JWT payload: the username as subject plus the role the
// permission policy evaluates on every request.
type Claims struct {
	Role       string `json:"role"`
	CustomerID string `json:"customer_id,omitempty"`
	jwt.StandardClaims
}

type service struct {
	userRepo user.Repository
	secret   []byte
}

// NewService creates a new auth service signing tokens with the given secret.
func NewService(userRepo user.Repository, secret []byte) Service {
	return &service{userRepo: userRepo, secret: secret}
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := SessionUser{Username: u.Username, Role: u.Role}
	if u.CustomerID != nil {
		session.CustomerID = u.CustomerID.String()
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Role:       session.Role,
		CustomerID: session.CustomerID,
		StandardClaims: jwt.StandardClaims{
			Subject:   u.Username,
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: tokenString, User: session}, nil
}
