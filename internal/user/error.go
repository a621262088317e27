package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be Staff or Admin")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrSelfDelete         = errors.New("cannot delete yourself")
)

// Postgres unique_violation, used to map duplicate emails.
const PgUniqueViolation = "23505"
