package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses with
// errors.Is; everything unrecognized becomes a 500.
var (
	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. Deliberately the same error for both cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned by ValidateToken for any token that is
	// malformed, badly signed, or expired.
	ErrInvalidToken = errors.New("invalid token")
)
