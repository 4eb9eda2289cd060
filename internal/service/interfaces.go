// Package service implements the business rules of the application:
// user account lifecycle with uniqueness enforcement, item CRUD, credential
// verification, and the JWT session token lifecycle. Services raise typed
// sentinel errors and never construct HTTP-specific payloads; translating
// errors to wire responses is the transport layer's responsibility.
package service

import (
	"context"

	"github.com/MKhiriev/echosell-api/models"
)

// UserService enforces the account business invariants on top of the user
// repository.
type UserService interface {
	// Register creates a new account. Username uniqueness is checked before
	// email so that a double collision reports the username conflict first.
	// The plain-text password is hashed before persisting and never echoed
	// outward.
	Register(ctx context.Context, user models.User, password string) (models.User, error)

	// Authenticate verifies username+password credentials. It fails with
	// ErrInvalidCredentials both for an unknown username and for a password
	// mismatch so that callers cannot distinguish the two cases.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	Get(ctx context.Context, id int64) (models.User, error)

	// List returns one page ordered by descending id along with the total
	// user count.
	List(ctx context.Context, offset, limit int) ([]models.User, int64, error)

	// Update applies a partial patch. When the patch carries username or
	// email, uniqueness is re-checked excluding the updated account itself.
	Update(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error)

	Delete(ctx context.Context, id int64) error
}

// ItemService enforces item business rules on top of the item repository.
type ItemService interface {
	// Create persists a new item against the explicit ownerID supplied by
	// the caller. The owner is NOT derived from the authenticated identity;
	// binding it to the caller would be a behavior change requiring a
	// stakeholder decision.
	Create(ctx context.Context, item models.Item, ownerID int64) (models.Item, error)

	Get(ctx context.Context, id int64) (models.Item, error)
	ListAll(ctx context.Context, offset, limit int) ([]models.Item, int64, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, int64, error)
	Update(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService owns the session token lifecycle: issuing, validating, caching
// and evicting bearer tokens.
type AuthService interface {
	// Login authenticates the credentials, issues a signed token and records
	// it in the token cache. Cache failures are logged but do not fail the
	// login: the cache is an auxiliary presence marker.
	Login(ctx context.Context, username, password string) (models.User, models.Token, error)

	// Logout evicts the token's cache entry. The signed token itself remains
	// valid until its embedded expiry.
	Logout(ctx context.Context, token string) error

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies the signature, issuer and expiry of a raw token
	// string. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ValidateToken parses the token and resolves its subject to an
	// existing, active user. Used by the authentication middleware.
	ValidateToken(ctx context.Context, tokenString string) (models.User, error)
}
