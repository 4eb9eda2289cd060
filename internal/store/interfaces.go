// Package store implements the persistence layer of the application:
// PostgreSQL-backed repositories for users and items, and a Redis-backed
// session token cache. Repositories translate driver-level failures into the
// sentinel errors declared in errors.go so upper layers never inspect
// database error codes directly.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/echosell-api/models"
)

// UserRepository is the data-access contract for user accounts.
//
// All mutations are atomic per call and re-fetch canonical state via
// RETURNING clauses, so returned values always reflect server-assigned
// fields (id, timestamps).
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UsernameExists and EmailExists report whether another user (any user
	// with id != excludeID) already holds the given identity attribute.
	// Pass excludeID = 0 to check against all users.
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)

	// ListUsers returns one page ordered by descending id
	// (most-recently-created first).
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)

	UpdateUser(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemRepository is the data-access contract for items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)

	ListItems(ctx context.Context, offset, limit int) ([]models.Item, error)
	CountItems(ctx context.Context) (int64, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error)
	CountItemsByOwner(ctx context.Context, ownerID int64) (int64, error)

	UpdateItem(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// TokenCache tracks issued session tokens in a fast key/value store with an
// independent TTL. The cache is an auxiliary presence marker: absence of a
// token does not by itself invalidate a still-unexpired signed token.
type TokenCache interface {
	Cache(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Evict(ctx context.Context, token string) error
}
