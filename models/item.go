package models

import "time"

// Item is a user-owned catalog entry.
type Item struct {
	// ID is the unique identifier of the item, assigned by the database.
	ID int64 `json:"id"`

	// Title is the required display title, 1–200 characters.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description"`

	// OwnerID references the owning User. The reference is supplied by the
	// caller at creation time and is not derived from the authenticated
	// identity.
	OwnerID int64 `json:"owner_id"`

	// IsCompleted marks the item as done. Defaults to false.
	IsCompleted bool `json:"is_completed"`

	// CreatedAt and UpdatedAt are server-assigned timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemUpdate is the partial-update patch for an Item. Nil fields are left
// untouched.
type ItemUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ItemUpdate) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.IsCompleted == nil
}
