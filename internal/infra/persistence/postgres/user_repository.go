// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/errors"
	"marquee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// primary pins reads to the write node so a lookup right after a write sees it.
func (repo *userRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "find user by id", "id = ?", id)
}

func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	return repo.first(ctx, "find user by username or email", "username = ? OR email = ?", username, email)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.first(ctx, "find user by username", "username = ?", username)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "find user by email", "email = ?", email)
}

func (repo *userRepository) FindByFederatedID(ctx context.Context, federatedID string) (*entity.User, error) {
	return repo.first(ctx, "find user by federated id", "google_id = ?", federatedID)
}

func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.first(ctx, "find user by reset token", "reset_token = ?", token)
}

func (repo *userRepository) first(ctx context.Context, op string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.primary(ctx).Where(query, args...).Order("created_at").First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to "+op)
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user. The unique indexes decide races between concurrent writers.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.primary(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrUserConflict, "create user: %s", violatedConstraint(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SetResetToken writes only reset_token, so it cannot undo a concurrent password reset.
func (repo *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenDigest string) (*entity.User, error) {
	var userM model.UserModel
	result := repo.primary(ctx).Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token": tokenDigest,
			"updated_at":  time.Now(),
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, errors.Wrapf(repository.ErrUserConflict, "set reset token: %s", violatedConstraint(err))
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to set reset token")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// LinkFederatedID only matches an unlinked row, so of two racing links at most one applies.
func (repo *userRepository) LinkFederatedID(ctx context.Context, id uuid.UUID, subjectID string) (*entity.User, error) {
	var userM model.UserModel
	result := repo.primary(ctx).Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ? AND (google_id IS NULL OR google_id = '')", id).
		Updates(map[string]any{
			"google_id":  subjectID,
			"updated_at": time.Now(),
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, errors.Wrapf(repository.ErrUserConflict, "link federated id: %s", violatedConstraint(err))
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to link federated id")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, errors.Wrap(repository.ErrUserConflict, "link federated id: already linked")
	}

	return toUserDomain(&userM), nil
}

// ConsumeResetToken relies on the row lock taken by UPDATE: a second statement for the
// same digest re-evaluates the predicate after the first commits and matches nothing.
func (repo *userRepository) ConsumeResetToken(ctx context.Context, tokenDigest, passwordHash string) (*entity.User, error) {
	var userM model.UserModel
	result := repo.primary(ctx).Model(&userM).
		Clauses(clause.Returning{}).
		Where("reset_token = ?", tokenDigest).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"reset_token":   nil,
			"updated_at":    time.Now(),
		})
	if err := result.Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to consume reset token")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		Username:     userM.Username,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Mobile:       userM.Mobile,
		FederatedID:  userM.FederatedID,
		ResetToken:   userM.ResetToken,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Mobile:       user.Mobile,
		FederatedID:  user.FederatedID,
		ResetToken:   user.ResetToken,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
