package usecase

import "context"

// TokenUsecase defines the interface for session token issuance.
type TokenUsecase interface {
	// IssueToken signs a session token for the user registered under email.
	IssueToken(ctx context.Context, email string) (string, error)
}

// --- Input DTOs ---

// IssueTokenInput defines the data required to issue a session token.
type IssueTokenInput struct {
	Email string `json:"email" validate:"required,email"`
}
