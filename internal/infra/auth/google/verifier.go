// Package google verifies Google-issued ID tokens for federated login.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"marquee/config"
	"marquee/internal/domain/service"
	"marquee/internal/errors"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var trustedIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// validateFunc matches (*idtoken.Validator).Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// IDTokenVerifier implements service.IdentityVerifier against Google's published signing keys.
type IDTokenVerifier struct {
	clientID string
	timeout  time.Duration
	logger   *slog.Logger
	validate validateFunc
}

// NewIDTokenVerifier creates the verifier. An empty client id yields a verifier
// that reports itself unconfigured and rejects every assertion.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	verifier := &IDTokenVerifier{logger: logger}
	if cfg.GoogleOAuth != nil {
		verifier.clientID = strings.TrimSpace(cfg.GoogleOAuth.ClientID)
		verifier.timeout = cfg.GoogleOAuth.VerifyTimeout
	}
	if verifier.timeout <= 0 {
		verifier.timeout = 5 * time.Second
	}

	if verifier.clientID == "" {
		logger.Warn("Google client id is not configured, federated login disabled")

		return verifier, nil
	}

	// The key fetch shares the verification timeout.
	validator, err := idtoken.NewValidator(context.Background(),
		option.WithHTTPClient(&http.Client{Timeout: verifier.timeout}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create id token validator")
	}
	verifier.validate = validator.Validate

	return verifier, nil
}

// Configured reports whether a client id is set.
func (v *IDTokenVerifier) Configured() bool {
	return v.clientID != "" && v.validate != nil
}

// Verify validates the signature, audience and expiry through idtoken, then checks
// the issuer and required claims locally.
func (v *IDTokenVerifier) Verify(ctx context.Context, assertion string) (*service.FederatedIdentity, error) {
	if !v.Configured() {
		return nil, service.ErrVerifierNotConfigured
	}

	assertion = strings.TrimSpace(assertion)
	if assertion == "" {
		return nil, errors.Wrap(service.ErrInvalidAssertion, "empty assertion")
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	payload, err := v.validate(ctx, assertion, v.clientID)
	if err != nil {
		v.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidAssertion, err.Error())
	}

	identity, err := identityFromPayload(payload, v.clientID, time.Now())
	if err != nil {
		v.logger.WarnContext(ctx, "Google ID token claims rejected", slog.Any("error", err))

		return nil, err
	}

	return identity, nil
}

// identityFromPayload re-checks the claims idtoken does not cover and extracts the identity.
func identityFromPayload(payload *idtoken.Payload, audience string, now time.Time) (*service.FederatedIdentity, error) {
	if payload == nil {
		return nil, errors.Wrap(service.ErrInvalidAssertion, "missing payload")
	}

	if _, ok := trustedIssuers[payload.Issuer]; !ok {
		return nil, errors.Wrapf(service.ErrInvalidAssertion, "invalid issuer: %s", payload.Issuer)
	}

	if payload.Audience != audience {
		return nil, errors.Wrapf(service.ErrInvalidAssertion, "invalid audience: %s", payload.Audience)
	}

	if payload.Expires <= now.Unix() {
		return nil, errors.Wrap(service.ErrInvalidAssertion, "token expired")
	}

	if payload.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidAssertion, "missing subject")
	}

	email := claimString(payload.Claims, "email")
	if email == "" {
		return nil, errors.Wrap(service.ErrInvalidAssertion, "missing email")
	}

	return &service.FederatedIdentity{
		SubjectID:     payload.Subject,
		Email:         email,
		DisplayName:   claimString(payload.Claims, "name"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}, nil
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return strings.TrimSpace(value)
}

// claimBool accepts both JSON booleans and the "true" string some issuers emit.
func claimBool(claims map[string]any, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(value, "true")
	default:
		return false
	}
}
