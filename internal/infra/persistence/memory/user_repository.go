// Package memory is an in-process credential store for local runs and tests.
// A single mutex serializes writes, so uniqueness checks and inserts are atomic.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"marquee/internal/domain/entity"
	"marquee/internal/domain/repository"
	"marquee/internal/errors"

	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
	now   func() time.Time
}

// NewUserRepository creates an empty store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]*entity.User),
		now:   time.Now,
	}
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(user), nil
}

func (repo *userRepository) FindByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool {
		return u.Username == username || u.Email == email
	})
}

func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return u.Username == username })
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return u.Email == email })
}

func (repo *userRepository) FindByFederatedID(_ context.Context, federatedID string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return equalSet(u.FederatedID, &federatedID) })
}

func (repo *userRepository) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return equalSet(u.ResetToken, &token) })
}

// find returns the oldest matching user, mirroring the ordered lookup of the SQL store.
func (repo *userRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var matches []*entity.User
	for _, user := range repo.users {
		if match(user) {
			matches = append(matches, user)
		}
	}

	if len(matches) == 0 {
		return nil, repository.ErrUserNotFound
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	return clone(matches[0]), nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	if _, exists := repo.users[user.ID]; exists {
		return errors.Wrap(repository.ErrUserConflict, "create user: id")
	}

	if err := repo.checkUnique(user); err != nil {
		return errors.Wrap(err, "create user")
	}

	now := repo.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	repo.users[user.ID] = clone(user)

	return nil
}

func (repo *userRepository) SetResetToken(_ context.Context, id uuid.UUID, tokenDigest string) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	for otherID, other := range repo.users {
		if otherID != id && equalSet(other.ResetToken, &tokenDigest) {
			return nil, errors.Wrap(repository.ErrUserConflict, "set reset token")
		}
	}

	user.SetResetToken(tokenDigest)
	user.UpdatedAt = repo.now()

	return clone(user), nil
}

func (repo *userRepository) LinkFederatedID(_ context.Context, id uuid.UUID, subjectID string) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if user.IsFederated() {
		return nil, errors.Wrap(repository.ErrUserConflict, "link federated id: already linked")
	}

	for _, other := range repo.users {
		if equalSet(other.FederatedID, &subjectID) {
			return nil, errors.Wrap(repository.ErrUserConflict, "link federated id")
		}
	}

	user.LinkFederatedID(subjectID)
	user.UpdatedAt = repo.now()

	return clone(user), nil
}

func (repo *userRepository) ConsumeResetToken(_ context.Context, tokenDigest, passwordHash string) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, user := range repo.users {
		if !equalSet(user.ResetToken, &tokenDigest) {
			continue
		}

		user.SetPassword(passwordHash)
		user.ClearResetToken()
		user.UpdatedAt = repo.now()

		return clone(user), nil
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Ping(context.Context) error {
	return nil
}

// checkUnique must be called with the write lock held.
func (repo *userRepository) checkUnique(candidate *entity.User) error {
	for id, other := range repo.users {
		if id == candidate.ID {
			continue
		}

		switch {
		case other.Username == candidate.Username:
			return errors.Wrap(repository.ErrUserConflict, "username")
		case other.Email == candidate.Email:
			return errors.Wrap(repository.ErrUserConflict, "email")
		case equalSet(other.FederatedID, candidate.FederatedID):
			return errors.Wrap(repository.ErrUserConflict, "federated id")
		case equalSet(other.ResetToken, candidate.ResetToken):
			return errors.Wrap(repository.ErrUserConflict, "reset token")
		}
	}

	return nil
}

// equalSet treats nil as "unset": two unset values never collide.
func equalSet(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

func clone(user *entity.User) *entity.User {
	cp := *user
	cp.PasswordHash = clonePtr(user.PasswordHash)
	cp.Mobile = clonePtr(user.Mobile)
	cp.FederatedID = clonePtr(user.FederatedID)
	cp.ResetToken = clonePtr(user.ResetToken)

	return &cp
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
