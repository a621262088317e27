package payment

import "time"

// StatusPaid is the only status the simulated settlement produces.
const StatusPaid = "Paid"

type Payment struct {
	ID          int       `json:"id"`
	OrderID     int       `json:"order_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"payment_method"`
	Status      string    `json:"payment_status"`
	PaymentTime time.Time `json:"payment_time"`
	Reference   string    `json:"reference"`
}

// OrderSummary carries the order row returned alongside a payment lookup.
type OrderSummary struct {
	ID        int       `json:"id"`
	TableID   int       `json:"table_id"`
	Status    string    `json:"order_status"`
	CreatedAt time.Time `json:"created_at"`
}

type RecordPaymentParams struct {
	OrderID int     `json:"order_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"payment_method"`
}
