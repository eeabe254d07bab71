package auth

import "errors"

// Messages are shown to the user as-is.
var (
	ErrMissingFields      = errors.New("please fill in all required fields")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrResetInvalid       = errors.New("reset link is invalid or has expired")
	ErrNotSignedIn        = errors.New("please sign in first")
)

// MinPasswordLength matches the sign-up form.
const MinPasswordLength = 6
