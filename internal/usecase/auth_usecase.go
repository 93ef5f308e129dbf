// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a local account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Mobile   *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

type ForgotPasswordInput struct {
	Email string
}

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// FederatedLoginInput carries the identity assertion issued by Google.
type FederatedLoginInput struct {
	Credential string
}

// --- Output DTOs ---

// SignupOutput acknowledges the created account. No token is issued at signup.
type SignupOutput struct {
	User *entity.UserView
}

// SessionOutput is returned by every successful login path.
type SessionOutput struct {
	AccessToken string
	User        *entity.UserView
}

// ForgotPasswordOutput exposes the raw reset token. There is no email delivery,
// so the token travels back in the response.
type ForgotPasswordOutput struct {
	ResetToken string
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	FederatedLogin(ctx context.Context, input *FederatedLoginInput) (*SessionOutput, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.UserView, error)
}
