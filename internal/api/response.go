package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafeteria-be/internal/category"
	"cafeteria-be/internal/menu"
	"cafeteria-be/internal/order"
	"cafeteria-be/internal/payment"
	"cafeteria-be/internal/table"
	"cafeteria-be/internal/user"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSONResponse writes a JSON response with the given status code and data
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteErrorResponse writes an error response with the given status code and message
func WriteErrorResponse(w http.ResponseWriter, statusCode int, err, message string) {
	WriteJSONResponse(w, statusCode, ErrorResponse{Error: err, Message: message})
}

// WriteDomainError maps a service error onto the response, distinguishing
// not-found, invalid input and forbidden so clients can react differently.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, payment.ErrPaymentNotFound),
		errors.Is(err, menu.ErrMenuItemNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, table.ErrTableNotFound),
		errors.Is(err, user.ErrUserNotFound):
		WriteErrorResponse(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrMethodRequired),
		errors.Is(err, menu.ErrInvalidPrice),
		errors.Is(err, menu.ErrNameRequired),
		errors.Is(err, menu.ErrAvailabilityRequired),
		errors.Is(err, category.ErrNameRequired),
		errors.Is(err, category.ErrCategoryExists),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrPasswordTooShort):
		WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())

	case errors.Is(err, menu.ErrForbiddenRole),
		errors.Is(err, user.ErrSelfDelete):
		WriteErrorResponse(w, http.StatusForbidden, "forbidden", err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", err.Error())

	default:
		WriteErrorResponse(w, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

// WriteValidationError is for mutations whose referenced entity is missing;
// the caller sent an id that does not exist, which is bad input, not a miss.
func WriteValidationError(w http.ResponseWriter, err error) {
	WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
}
