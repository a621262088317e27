package api

import (
	"net/http"

	"cafeteria-be/internal/user"
)

type Handlers struct {
	Auth     *AuthHandler
	Order    *OrderHandler
	Payment  *PaymentHandler
	Menu     *MenuHandler
	Category *CategoryHandler
	Table    *TableHandler
	Admin    *AdminHandler
}

// NewRouter wires the HTTP surface. Role gates sit on the route; field-level
// authorization for menu updates lives in the menu service.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	staffOrAdmin := []user.Role{user.RoleStaff, user.RoleAdmin}
	adminOnly := []user.Role{user.RoleAdmin}

	mux.HandleFunc("POST /api/login", h.Auth.Login)

	// Menu browsing is public; customers reach it from a table QR code.
	mux.HandleFunc("GET /api/categories", h.Category.List)
	mux.HandleFunc("GET /api/categories/{id}", h.Category.Get)
	mux.HandleFunc("POST /api/categories", RequireRoles(h.Category.Create, adminOnly...))
	mux.HandleFunc("PUT /api/categories/{id}", RequireRoles(h.Category.Update, adminOnly...))
	mux.HandleFunc("DELETE /api/categories/{id}", RequireRoles(h.Category.Delete, adminOnly...))

	mux.HandleFunc("GET /api/menu-items", h.Menu.List)
	mux.HandleFunc("GET /api/menu-items/{id}", h.Menu.Get)
	mux.HandleFunc("POST /api/menu-items", RequireRoles(h.Menu.Create, adminOnly...))
	mux.HandleFunc("PUT /api/menu-items/{id}", RequireRoles(h.Menu.Update, staffOrAdmin...))
	mux.HandleFunc("DELETE /api/menu-items/{id}", RequireRoles(h.Menu.Delete, adminOnly...))

	mux.HandleFunc("GET /api/tables", h.Table.List)
	mux.HandleFunc("GET /api/tables/{id}", h.Table.Get)

	// Customers place orders anonymously and poll the status endpoint.
	mux.HandleFunc("POST /api/orders", h.Order.Create)
	mux.HandleFunc("GET /api/orders/{id}", h.Order.Get)
	mux.HandleFunc("GET /api/orders", RequireRoles(h.Order.List, staffOrAdmin...))
	mux.HandleFunc("PUT /api/orders/{id}", RequireRoles(h.Order.UpdateStatus, staffOrAdmin...))

	mux.HandleFunc("POST /api/payments", h.Payment.Record)
	mux.HandleFunc("GET /api/payments/{id}", h.Payment.Get)

	mux.HandleFunc("POST /api/admin/generate-qr", RequireRoles(h.Admin.GenerateQrCode, adminOnly...))
	mux.HandleFunc("GET /api/admin/reports", RequireRoles(h.Admin.Reports, adminOnly...))
	mux.HandleFunc("GET /api/admin/stats", RequireRoles(h.Admin.Stats, adminOnly...))
	mux.HandleFunc("GET /api/admin/staff", RequireRoles(h.Admin.ListStaff, adminOnly...))
	mux.HandleFunc("POST /api/admin/staff", RequireRoles(h.Admin.CreateStaff, adminOnly...))
	mux.HandleFunc("PUT /api/admin/staff/{id}", RequireRoles(h.Admin.UpdateStaff, adminOnly...))
	mux.HandleFunc("DELETE /api/admin/staff/{id}", RequireRoles(h.Admin.DeleteStaff, adminOnly...))

	return mux
}
