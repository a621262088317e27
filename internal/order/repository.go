package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cafeteria-be/internal/logger"
	"cafeteria-be/internal/payment"

	"go.uber.org/zap"
)

type Repository interface {
	TableExists(ctx context.Context, tableID int) (bool, error)
	MenuItemExists(ctx context.Context, itemID int) (bool, error)

	CreateOrderTx(ctx context.Context, o *Order, items []OrderItemInput) error
	GetOrderDetail(ctx context.Context, orderID int) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	FetchOrderDetails(ctx context.Context, orderIDs []int) (map[int][]OrderDetail, error)
	UpdateStatus(ctx context.Context, orderID int, status OrderStatus) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TableExists(ctx context.Context, tableID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM tables WHERE id = $1)`, tableID).
		Scan(&exists)
	return exists, err
}

func (r *repository) MenuItemExists(ctx context.Context, itemID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM menu_items WHERE id = $1)`, itemID).
		Scan(&exists)
	return exists, err
}

// CreateOrderTx inserts the order and all of its detail rows in one
// transaction. A failure on any row leaves nothing behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order, items []OrderItemInput) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int("table_id", o.TableID),
		zap.Int("item_count", len(items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, table_id, order_status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, o.UserID, o.TableID, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i, item := range items {
		var d OrderDetail
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_details (order_id, item_id, quantity, item_status)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, item.ItemID, item.Quantity, StatusPending).
			Scan(&d.ID)
		if err != nil {
			log.Error("failed to insert order detail",
				zap.Int("item_index", i),
				zap.Int("item_id", item.ItemID),
				zap.Error(err),
			)
			return err
		}

		d.OrderID = o.ID
		d.ItemID = item.ItemID
		d.Quantity = item.Quantity
		d.ItemStatus = StatusPending
		o.Details = append(o.Details, d)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order transaction committed", zap.Int("order_id", o.ID))

	return nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID int) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, table_id, order_status, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&o.ID, &o.UserID, &o.TableID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT od.id, od.item_id, od.quantity, od.item_status, mi.name
		FROM order_details od
		JOIN menu_items mi ON mi.id = od.item_id
		WHERE od.order_id = $1
		ORDER BY od.id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(&d.ID, &d.ItemID, &d.Quantity, &d.ItemStatus, &d.ItemName); err != nil {
			return nil, err
		}
		d.OrderID = o.ID
		o.Details = append(o.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One payment per order in normal flow; take the latest if several exist.
	var p payment.Payment
	err = r.db.QueryRowContext(ctx, `
		SELECT id, order_id, amount, payment_method, payment_status, payment_time, reference
		FROM payments
		WHERE order_id = $1
		ORDER BY payment_time DESC
		LIMIT 1
	`, orderID).Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status, &p.PaymentTime, &p.Reference)
	if err == nil {
		o.Payment = &p
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return &o, nil
}

func (r *repository) ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
	)

	query := `
		SELECT o.id, o.user_id, o.table_id, o.order_status, o.created_at, o.updated_at
		FROM orders o
	`

	where := []string{}
	args := []any{}

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("o.order_status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.TableID != nil {
		where = append(where, fmt.Sprintf("o.table_id = $%d", len(args)+1))
		args = append(args, *filter.TableID)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY o.created_at DESC"

	log.Debug("executing list orders query",
		zap.String("query", query),
		zap.Any("args", args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TableID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	log.Info("list orders success", zap.Int("count", len(orders)))

	return orders, nil
}

// FetchOrderDetails loads detail rows for a batch of orders in one query.
func (r *repository) FetchOrderDetails(ctx context.Context, orderIDs []int) (map[int][]OrderDetail, error) {
	if len(orderIDs) == 0 {
		return map[int][]OrderDetail{}, nil
	}

	placeholders := make([]string, len(orderIDs))
	args := make([]any, len(orderIDs))
	for i, id := range orderIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT od.id, od.order_id, od.item_id, od.quantity, od.item_status, mi.name
		FROM order_details od
		JOIN menu_items mi ON mi.id = od.item_id
		WHERE od.order_id IN (%s)
		ORDER BY od.id ASC
	`, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make(map[int][]OrderDetail)
	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ItemID, &d.Quantity, &d.ItemStatus, &d.ItemName); err != nil {
			return nil, err
		}
		details[d.OrderID] = append(details[d.OrderID], d)
	}

	return details, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, orderID int, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET order_status = $1, updated_at = NOW() WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
