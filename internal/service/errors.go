// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Sentinel errors raised by the service layer. Transport code matches them
// with [errors.Is] when translating failures to HTTP statuses.
var (
	// ErrInvalidDataProvided is returned when required input fields are
	// missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by authentication for both an
	// unknown username and a wrong password, deliberately hiding which of
	// the two failed.
	ErrInvalidCredentials = errors.New("invalid username/password")

	// ErrTokenCreationFailed is returned when signing a JWT fails; this only
	// happens on misconfiguration.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised failure for any token
	// that is malformed, carries a bad signature, or has expired.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUserIsInactive is returned when a valid token resolves to a user
	// whose account has been deactivated.
	ErrUserIsInactive = errors.New("user is inactive")
)
