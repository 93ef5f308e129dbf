// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in with a local password, a federated identity, or both.
// Optional columns are pointers so that "unset" is distinguishable from the empty string;
// the store enforces uniqueness only on set values.
type User struct {
	ID           uuid.UUID // Assigned at creation, never changes.
	Username     string    // Globally unique login name.
	Email        string    // Globally unique contact address.
	PasswordHash *string   // bcrypt hash; nil for federated-only accounts.
	Mobile       *string   // Optional, not unique.
	FederatedID  *string   // External provider subject id, unique when set.
	ResetToken   *string   // Digest of the latest password-reset token, cleared once used.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can log in with a local password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// SetPassword stores a freshly computed hash.
func (u *User) SetPassword(hash string) {
	u.PasswordHash = &hash
}

// IsFederated reports whether a federated identity is linked to the account.
func (u *User) IsFederated() bool {
	return u.FederatedID != nil && *u.FederatedID != ""
}

// LinkFederatedID links an external provider's subject id.
func (u *User) LinkFederatedID(subjectID string) {
	u.FederatedID = &subjectID
}

// SetResetToken replaces any previously issued reset token.
func (u *User) SetResetToken(digest string) {
	u.ResetToken = &digest
}

// ClearResetToken makes the current reset token unusable.
func (u *User) ClearResetToken() {
	u.ResetToken = nil
}

// UserView is the public representation of a User. It never carries credentials.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Mobile   *string   `json:"mobile"`
	Google   bool      `json:"google_linked"`
}

// View builds the public representation of the user.
func (u *User) View() *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Mobile:   u.Mobile,
		Google:   u.IsFederated(),
	}
}
