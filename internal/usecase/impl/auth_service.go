// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"marquee/config"
	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/errors"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/fx"
)

const (
	suffixAlphabet      = "0123456789abcdef"
	maxUsernameAttempts = 5
	maxUsernameLength   = 80
	fallbackUsername    = "user"
)

// Operation names used for metrics.
const (
	opSignup         = "signup"
	opLogin          = "login"
	opForgotPassword = "forgot_password"
	opResetPassword  = "reset_password"
	opFederatedLogin = "google_login"
)

// authService implements the AuthUsecase interface. It holds no state of its own;
// every invariant is delegated to the store.
type authService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	verifier          service.IdentityVerifier
	metrics           service.AuthMetrics
	resetTokenLength  int
	usernameSuffixLen int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Metrics      service.AuthMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		verifier:          params.Verifier,
		metrics:           params.Metrics,
		resetTokenLength:  22,
		usernameSuffixLen: 4,
		logger:            params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.ResetTokenLength > 0 {
			srv.resetTokenLength = params.Config.Auth.ResetTokenLength
		}
		if params.Config.Auth.UsernameSuffixLength > 0 {
			srv.usernameSuffixLen = params.Config.Auth.UsernameSuffixLength
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// observe records the outcome: client faults count as failures, everything else as errors.
func (srv *authService) observe(operation string, err error) {
	if srv.metrics == nil {
		return
	}

	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeError

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			outcome = service.OutcomeFailure
		}
	}

	srv.metrics.ObserveAuth(operation, outcome)
}

// Signup creates a local account. The pre-check gives the common duplicate case a
// cheap answer; the store's unique indexes settle races.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (out *usecase.SignupOutput, err error) {
	defer func() { srv.observe(opSignup, err) }()

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	srv.log(ctx).Debug("Starting signup", slog.String("username", input.Username))

	_, err = srv.userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, domainerrors.ErrPasswordTooLong) {
		return nil, domainerrors.ErrPasswordTooLong
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Mobile:   input.Mobile,
	}
	newUser.SetPassword(hashedPassword)

	if err = srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			srv.log(ctx).Info("Signup lost uniqueness race", slog.Any("error", err))

			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser.View()}, nil
}

// Login authenticates with a local password. Every rejection cause yields the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (out *usecase.SessionOutput, err error) {
	defer func() { srv.observe(opLogin, err) }()

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown user"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !user.HasPassword() {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "no local password"), slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, *user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"), slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueSession(ctx, user)
}

// ForgotPassword stores the digest of a fresh reset token, replacing any earlier one.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (out *usecase.ForgotPasswordOutput, err error) {
	defer func() { srv.observe(opForgotPassword, err) }()

	if input.Email == "" {
		return nil, domainerrors.NewValidationError("Email is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	token, err := gonanoid.New(srv.resetTokenLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	user, err = srv.userRepo.SetResetToken(ctx, user.ID, digestResetToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to store reset token")
	}

	srv.log(ctx).Info("Password reset issued", slog.Any("userID", user.ID))

	return &usecase.ForgotPasswordOutput{ResetToken: token}, nil
}

// ResetPassword consumes the token and sets the new password in one store operation,
// so a token can succeed at most once even under concurrent use.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (err error) {
	defer func() { srv.observe(opResetPassword, err) }()

	if input.Token == "" || input.NewPassword == "" {
		return domainerrors.NewValidationError("Token and new password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if errors.Is(err, domainerrors.ErrPasswordTooLong) {
		return domainerrors.ErrPasswordTooLong
	}
	if err != nil {
		return errors.Wrap(err, "failed to hash password during reset")
	}

	user, err := srv.userRepo.ConsumeResetToken(ctx, digestResetToken(input.Token), hashedPassword)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to consume reset token")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// FederatedLogin signs in with a Google ID token, creating or linking the account as needed.
func (srv *authService) FederatedLogin(ctx context.Context, input *usecase.FederatedLoginInput) (out *usecase.SessionOutput, err error) {
	defer func() { srv.observe(opFederatedLogin, err) }()

	if srv.verifier == nil || !srv.verifier.Configured() {
		return nil, domainerrors.ErrFederatedNotConfigured
	}

	identity, err := srv.verifier.Verify(ctx, input.Credential)
	if err != nil {
		if errors.Is(err, service.ErrVerifierNotConfigured) {
			return nil, domainerrors.ErrFederatedNotConfigured
		}

		return nil, domainerrors.ErrInvalidFederatedToken.WithDetails(err.Error())
	}

	user, err := srv.resolveFederatedUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	return srv.issueSession(ctx, user)
}

// resolveFederatedUser finds the account by subject, then by email, creating one when neither matches.
func (srv *authService) resolveFederatedUser(ctx context.Context, identity *service.FederatedIdentity) (*entity.User, error) {
	user, err := srv.findFederatedUser(ctx, identity)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if !identity.EmailVerified {
		srv.log(ctx).Warn("Refusing to create account for unverified Google email", slog.String("subject", identity.SubjectID))

		return nil, domainerrors.ErrInvalidFederatedToken.WithDetails("email not verified")
	}

	base := deriveUsername(identity.DisplayName, identity.Email)
	for attempt := range maxUsernameAttempts {
		candidate := base
		if attempt > 0 {
			suffix, err := gonanoid.Generate(suffixAlphabet, srv.usernameSuffixLen)
			if err != nil {
				return nil, errors.Wrap(err, "failed to generate username suffix")
			}
			candidate = truncate(base, maxUsernameLength-len(suffix)) + suffix
		}

		newUser := &entity.User{Username: candidate, Email: identity.Email}
		newUser.LinkFederatedID(identity.SubjectID)

		err := srv.userRepo.Create(ctx, newUser)
		if err == nil {
			srv.log(ctx).Info("Created account from Google login", slog.Any("userID", newUser.ID))

			return newUser, nil
		}
		if !errors.Is(err, repository.ErrUserConflict) {
			return nil, errors.Wrap(err, "failed to create federated user")
		}

		// A concurrent login for the same identity may have won; otherwise the username is taken.
		user, findErr := srv.findFederatedUser(ctx, identity)
		if findErr == nil {
			return user, nil
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return nil, findErr
		}
	}

	srv.log(ctx).Warn("Could not find a free username", slog.String("base", base))

	return nil, domainerrors.ErrUserAlreadyExists
}

// findFederatedUser returns repository.ErrUserNotFound when no account matches the identity.
func (srv *authService) findFederatedUser(ctx context.Context, identity *service.FederatedIdentity) (*entity.User, error) {
	user, err := srv.userRepo.FindByFederatedID(ctx, identity.SubjectID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by federated id")
	}

	user, err = srv.userRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.IsFederated() {
		srv.log(ctx).Warn("Email already linked to another Google subject", slog.Any("userID", user.ID))

		return user, nil
	}

	if !identity.EmailVerified {
		srv.log(ctx).Warn("Refusing to link unverified Google email", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidFederatedToken.WithDetails("email not verified")
	}

	linked, err := srv.userRepo.LinkFederatedID(ctx, user.ID, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			// Lost a race with a concurrent link of this subject or of this account.
			if winner, findErr := srv.userRepo.FindByFederatedID(ctx, identity.SubjectID); findErr == nil {
				return winner, nil
			}
			if current, findErr := srv.userRepo.FindByID(ctx, user.ID); findErr == nil && current.IsFederated() {
				return current, nil
			}

			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to link federated id")
	}

	srv.log(ctx).Info("Linked Google identity to existing account", slog.Any("userID", linked.ID))

	return linked, nil
}

// CurrentUser loads the public view of an authenticated user.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user.View(), nil
}

func (srv *authService) issueSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	accessToken, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{AccessToken: accessToken, User: user.View()}, nil
}

// digestResetToken is what the store keeps; the raw token only ever leaves in the response.
func digestResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// deriveUsername lowercases the display name and strips whitespace. An empty result
// falls back to the email local part.
func deriveUsername(displayName, email string) string {
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}

			return unicode.ToLower(r)
		}, s)
	}

	username := strip(displayName)
	if username == "" {
		local, _, _ := strings.Cut(email, "@")
		username = strip(local)
	}
	if username == "" {
		username = fallbackUsername
	}

	return truncate(username, maxUsernameLength)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
