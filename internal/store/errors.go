package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when creating or updating a user
	// would violate the username uniqueness constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when creating or updating a user
	// would violate the email uniqueness constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query targets a user id or username
	// that does not exist in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when a query targets an item id that does
	// not exist in the database.
	ErrItemNotFound = errors.New("item not found")

	// ErrOwnerNotFound is returned when an item insert references an
	// owner_id with no matching user row.
	ErrOwnerNotFound = errors.New("item owner not found")

	// ErrNothingToUpdate is returned when a partial-update patch carries no
	// fields at all.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
