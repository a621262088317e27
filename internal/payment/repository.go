package payment

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	OrderExists(ctx context.Context, orderID int) (bool, error)
	SavePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, paymentID int) (*Payment, *OrderSummary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrderExists(ctx context.Context, orderID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).
		Scan(&exists)
	return exists, err
}

func (r *repository) SavePayment(ctx context.Context, p *Payment) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO payments (order_id, amount, payment_method, payment_status, payment_time, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.OrderID, p.Amount, p.Method, p.Status, p.PaymentTime, p.Reference).
		Scan(&p.ID)
}

func (r *repository) GetPayment(ctx context.Context, paymentID int) (*Payment, *OrderSummary, error) {
	var p Payment
	var o OrderSummary
	err := r.db.QueryRowContext(ctx, `
		SELECT
			p.id, p.order_id, p.amount, p.payment_method, p.payment_status,
			p.payment_time, p.reference,
			o.id, o.table_id, o.order_status, o.created_at
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE p.id = $1
	`, paymentID).Scan(
		&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status,
		&p.PaymentTime, &p.Reference,
		&o.ID, &o.TableID, &o.Status, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return &p, &o, nil
}
