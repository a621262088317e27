package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrMethodRequired  = errors.New("payment method is required")
)
