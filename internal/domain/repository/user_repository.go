// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned by lookups and updates that match no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserConflict is returned when a write would duplicate a username, email,
	// federated id or reset token held by another user.
	ErrUserConflict = errors.New("user uniqueness conflict")
)

// UserRepository is the credential store. It exclusively owns User records.
// All lookups are exact, case-sensitive matches. Uniqueness is enforced by the store itself,
// so two racing writers resolve to one success and one ErrUserConflict.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsernameOrEmail returns the first user whose username or email matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByFederatedID matches the linked external subject id.
	FindByFederatedID(ctx context.Context, federatedID string) (*entity.User, error)

	// FindByResetToken matches the stored reset token value exactly.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user and assigns its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// SetResetToken replaces the reset token digest of the user and touches no other column.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenDigest string) (*entity.User, error)

	// LinkFederatedID links subjectID to a user that has no federated id yet and touches no
	// other column. It returns ErrUserConflict when the user is already linked or the subject
	// belongs to someone else.
	LinkFederatedID(ctx context.Context, id uuid.UUID, subjectID string) (*entity.User, error)

	// ConsumeResetToken atomically sets the password hash and clears the reset token of the
	// user holding tokenDigest. At most one caller succeeds per token; the rest get ErrUserNotFound.
	ConsumeResetToken(ctx context.Context, tokenDigest, passwordHash string) (*entity.User, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
