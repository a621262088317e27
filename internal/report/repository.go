package report

import (
	"context"
	"database/sql"

	"cafeteria-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	SalesByDate(ctx context.Context) ([]SalesRow, error)
	DemandTrends(ctx context.Context) ([]DemandRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// SalesByDate sums settled payments for served orders per calendar day.
func (r *repository) SalesByDate(ctx context.Context) ([]SalesRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SalesByDate"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE(o.created_at) AS date, SUM(p.amount) AS total_sales
		FROM orders o
		JOIN payments p ON p.order_id = o.id
		WHERE o.order_status = 'Served'
		GROUP BY DATE(o.created_at)
		ORDER BY date ASC
	`)
	if err != nil {
		log.Error("failed to query sales report", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []SalesRow
	for rows.Next() {
		var s SalesRow
		if err := rows.Scan(&s.Date, &s.TotalSales); err != nil {
			log.Error("failed to scan sales row", zap.Error(err))
			return nil, err
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

// DemandTrends counts the total ordered quantity per menu item, busiest first.
func (r *repository) DemandTrends(ctx context.Context) ([]DemandRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DemandTrends"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT mi.name, SUM(od.quantity) AS total_quantity
		FROM order_details od
		JOIN menu_items mi ON mi.id = od.item_id
		GROUP BY mi.name
		ORDER BY total_quantity DESC
	`)
	if err != nil {
		log.Error("failed to query demand trends", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var demand []DemandRow
	for rows.Next() {
		var d DemandRow
		if err := rows.Scan(&d.ItemName, &d.TotalQuantity); err != nil {
			log.Error("failed to scan demand row", zap.Error(err))
			return nil, err
		}
		demand = append(demand, d)
	}

	return demand, rows.Err()
}
