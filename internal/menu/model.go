package menu

import "time"

type MenuItem struct {
	ID           int       `json:"id"`
	CategoryID   int       `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        float64   `json:"price"`
	Availability bool      `json:"availability"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateMenuItemParams struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	CategoryID   int     `json:"category_id"`
	Availability *bool   `json:"availability"`
	Image        *string `json:"image"`
}

// UpdateMenuItemParams is a partial patch; nil fields are left untouched.
type UpdateMenuItemParams struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	CategoryID   *int     `json:"category_id"`
	Availability *bool    `json:"availability"`
	Image        *string  `json:"image"`
}

type MenuItemFilter struct {
	CategoryID *int
	Available  *bool
}
