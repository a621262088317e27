package user

import "time"

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleStaff    Role = "Staff"
	RoleAdmin    Role = "Admin"
)

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStaffParams struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type UpdateStaffParams struct {
	Name     *string
	Email    *string
	Password *string
	Role     *Role
}
