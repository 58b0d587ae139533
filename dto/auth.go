package dto

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workforce-hub/models"
)

// TokenClaims identifies the caller on every authenticated request
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenClaims builds claims for user valid from now until now+ttl
func NewTokenClaims(user models.User, now time.Time, ttl time.Duration) TokenClaims {
	return TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
}

// NormalizeEmail lowercases and trims an address so lookups ignore case
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a staff account; new accounts always get the user role
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name"`
}

// ToUser maps the request onto a user holding passwordHash
func (r RegisterRequest) ToUser(passwordHash string) models.User {
	return models.User{
		Email:    NormalizeEmail(r.Email),
		Password: passwordHash,
		Name:     r.Name,
		Role:     models.RoleUser,
	}
}

// AuthResponse is returned by login
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
