// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response envelopes to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUserRegistered confirms a successful account creation.
	MsgUserRegistered = "User register successfully"

	// MsgLoginSuccessful confirms a successful authentication and token issue.
	MsgLoginSuccessful = "Login successful"

	// MsgLogoutSuccessful confirms that the presented token was evicted.
	MsgLogoutSuccessful = "Logout successful"

	// MsgUsersRetrieved accompanies a paginated user listing.
	MsgUsersRetrieved = "Users retrieved successfully"

	// MsgUserRetrieved accompanies a single user payload.
	MsgUserRetrieved = "User retrieved successfully"

	// MsgUserUpdated confirms a partial user update.
	MsgUserUpdated = "User updated successfully"

	// MsgUserDeleted confirms a user removal.
	MsgUserDeleted = "User deleted successfully"

	// MsgItemCreated confirms an item creation.
	MsgItemCreated = "Item created successfully"

	// MsgItemsRetrieved accompanies a paginated item listing.
	MsgItemsRetrieved = "Items retrieved successfully"

	// MsgItemRetrieved accompanies a single item payload.
	MsgItemRetrieved = "Item retrieved successfully"

	// MsgItemUpdated confirms a partial item update.
	MsgItemUpdated = "Item updated successfully"

	// MsgItemDeleted confirms an item removal.
	MsgItemDeleted = "Item deleted successfully"

	// MsgUnauthorized is returned when a protected endpoint is hit without a
	// valid token.
	MsgUnauthorized = "Unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgValidationFailed is returned when the request body decodes but fails
	// field validation.
	MsgValidationFailed = "Validation failed"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgTokenRequired is returned when logout is called without a token.
	MsgTokenRequired = "Token is required"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned when a known route is hit with an
	// unsupported HTTP method.
	MsgMethodNotAllowed = "Method Not Allowed"
)
