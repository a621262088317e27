package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category name already exists")
	ErrNameRequired     = errors.New("name is required")
)

// Postgres unique_violation, used to map duplicate names.
const PgUniqueViolation = "23505"
