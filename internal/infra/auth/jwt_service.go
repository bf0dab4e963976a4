// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"metroshelter/config"
	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    time.Hour, // Matches the session length handed out on login.
	}, nil
}

// GenerateToken creates a signed access token for a given user identity and role.
func (s *jwtService) GenerateToken(email string, role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,                                // Subject (who the token is for)
		"role": role.String(),                        // Role tag for stateless gating
		"iat":  time.Now().Unix(),                    // Issued At
		"exp":  time.Now().Add(s.accessTTL).Unix(),   // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	})
}
