package menu

import "errors"

var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNameRequired         = errors.New("name is required")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrAvailabilityRequired = errors.New("availability is required")
	ErrForbiddenRole        = errors.New("role may not update menu items")
)
