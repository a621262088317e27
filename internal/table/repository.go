package table

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	ListTables(ctx context.Context) ([]*CafeteriaTable, error)
	GetTable(ctx context.Context, id int) (*CafeteriaTable, error)
	UpsertQrCode(ctx context.Context, qr *QrCode) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListTables(ctx context.Context) ([]*CafeteriaTable, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, table_number, location, status
		FROM tables
		ORDER BY table_number ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*CafeteriaTable
	for rows.Next() {
		var t CafeteriaTable
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Location, &t.Status); err != nil {
			return nil, err
		}
		tables = append(tables, &t)
	}

	return tables, rows.Err()
}

func (r *repository) GetTable(ctx context.Context, id int) (*CafeteriaTable, error) {
	var t CafeteriaTable
	err := r.db.QueryRowContext(ctx, `
		SELECT id, table_number, location, status
		FROM tables WHERE id = $1
	`, id).Scan(&t.ID, &t.TableNumber, &t.Location, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertQrCode keeps one QR row per table, regenerating in place.
func (r *repository) UpsertQrCode(ctx context.Context, qr *QrCode) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO qr_codes (table_id, qr_code_data, generated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (table_id)
		DO UPDATE SET qr_code_data = EXCLUDED.qr_code_data, generated_at = EXCLUDED.generated_at
		RETURNING id
	`, qr.TableID, qr.Data, qr.GeneratedAt).
		Scan(&qr.ID)
}
