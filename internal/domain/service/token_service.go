package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for access token validation.
// Session issuance lives outside this service; the core only needs to
// identify the acting user and their roles.
type TokenService interface {
	// ValidateToken parses and validates a signed access token.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
