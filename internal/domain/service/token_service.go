// Package service defines interfaces for external collaborators consumed by the
// application layer: token issuance and blob storage.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"metroshelter/internal/domain/entity"
)

// TokenService abstracts the authentication collaborator: it issues opaque
// session tokens and verifies them back into claims.
type TokenService interface {
	// GenerateToken creates a signed access token carrying the user's identity and role.
	GenerateToken(email string, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
