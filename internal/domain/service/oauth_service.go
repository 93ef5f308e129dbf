package service

import (
	"context"
	"errors"
)

// ErrInvalidAssertion is returned for any failed verification step: bad signature,
// wrong issuer or audience, expiry, or a malformed token.
var ErrInvalidAssertion = errors.New("invalid identity assertion")

// ErrVerifierNotConfigured is returned when no client id is configured.
var ErrVerifierNotConfigured = errors.New("identity verifier not configured")

// FederatedIdentity holds the verified claims of an external identity assertion.
type FederatedIdentity struct {
	SubjectID     string // Provider subject id ('sub')
	Email         string
	DisplayName   string
	EmailVerified bool
}

// IdentityVerifier validates assertions issued by a trusted external identity provider.
// Verification fails closed: callers never receive partially verified claims.
type IdentityVerifier interface {
	// Verify checks signature, issuer, audience and expiry of the assertion.
	Verify(ctx context.Context, assertion string) (*FederatedIdentity, error)

	// Configured reports whether a client id (audience) has been set.
	Configured() bool
}
