// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Unique indexes on nullable columns
// admit any number of NULLs, so only set values are constrained.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex:idx_users_username;not null"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex:idx_users_email;not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	Mobile       *string   `gorm:"type:varchar(32)"`
	FederatedID  *string   `gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id"`
	ResetToken   *string   `gorm:"type:varchar(255);uniqueIndex:idx_users_reset_token"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
