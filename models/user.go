package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login identifier, 3–50 characters.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// It MUST never be serialized outward.
	HashedPassword string `json:"-"`

	// IsActive gates authentication: tokens of inactive users are rejected.
	IsActive bool `json:"is_active"`

	// IsSuperuser is reserved for future authorization rules.
	IsSuperuser bool `json:"is_superuser"`

	// CreatedAt and UpdatedAt are server-assigned timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is the partial-update patch for a User. Nil fields are left
// untouched; set fields are merged into the stored record field by field.
type UserUpdate struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserUpdate) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.FullName == nil && p.IsActive == nil
}
