package utils

import "errors"

// Business-rule failures surfaced by the identity flows. Controllers map
// these to HTTP status codes with stable, non-leaking messages; anything
// not in this taxonomy is treated as an internal error (500) and logged.
var (
	// ErrConflict: a record with the same identity already exists
	ErrConflict = errors.New("already exists")
	// ErrNotFound: no record matches the given identity
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials: wrong email/password pair; callers must not
	// learn whether the email or the password was wrong
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrApprovalRequired: credentials are fine but the account is still
	// Pending; no token may be issued
	ErrApprovalRequired = errors.New("account pending approval")
	// ErrInvalidOrExpired: submitted OTP mismatched or outlived its expiry;
	// the two causes are deliberately indistinguishable
	ErrInvalidOrExpired = errors.New("invalid or expired code")
	// ErrUntrustedDomain: the email is outside the trusted domain suffix
	ErrUntrustedDomain = errors.New("email domain is not allowed")
	// ErrDelivery: the notifier could not deliver the code
	ErrDelivery = errors.New("failed to send verification code")
	// ErrForbidden: valid identity without admin capability or activation
	ErrForbidden = errors.New("access denied")
)
