package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cafeteria-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]*MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*MenuItem, error)
	CreateMenuItem(ctx context.Context, item *MenuItem) error
	UpdateMenuItem(ctx context.Context, id int, params UpdateMenuItemParams) (*MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
	CategoryExists(ctx context.Context, categoryID int) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListMenuItems"),
	)

	query := `
		SELECT
			mi.id, mi.category_id, c.name, mi.name, mi.description,
			mi.price, mi.availability, mi.image, mi.created_at, mi.updated_at
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
	`

	where := []string{}
	args := []any{}

	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("mi.category_id = $%d", len(args)+1))
		args = append(args, *filter.CategoryID)
	}
	if filter.Available != nil {
		where = append(where, fmt.Sprintf("mi.availability = $%d", len(args)+1))
		args = append(args, *filter.Available)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY mi.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query menu items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(
			&m.ID, &m.CategoryID, &m.CategoryName, &m.Name, &m.Description,
			&m.Price, &m.Availability, &m.Image, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			log.Error("failed to scan menu item row", zap.Error(err))
			return nil, err
		}
		items = append(items, &m)
	}

	return items, rows.Err()
}

func (r *repository) GetMenuItem(ctx context.Context, id int) (*MenuItem, error) {
	var m MenuItem
	err := r.db.QueryRowContext(ctx, `
		SELECT
			mi.id, mi.category_id, c.name, mi.name, mi.description,
			mi.price, mi.availability, mi.image, mi.created_at, mi.updated_at
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = $1
	`, id).Scan(
		&m.ID, &m.CategoryID, &m.CategoryName, &m.Name, &m.Description,
		&m.Price, &m.Availability, &m.Image, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) CreateMenuItem(ctx context.Context, item *MenuItem) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (category_id, name, description, price, availability, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, item.CategoryID, item.Name, item.Description, item.Price, item.Availability, item.Image).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *repository) UpdateMenuItem(ctx context.Context, id int, params UpdateMenuItemParams) (*MenuItem, error) {
	set := []string{}
	args := []any{}

	if params.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *params.Name)
	}
	if params.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *params.Description)
	}
	if params.Price != nil {
		set = append(set, fmt.Sprintf("price = $%d", len(args)+1))
		args = append(args, *params.Price)
	}
	if params.CategoryID != nil {
		set = append(set, fmt.Sprintf("category_id = $%d", len(args)+1))
		args = append(args, *params.CategoryID)
	}
	if params.Availability != nil {
		set = append(set, fmt.Sprintf("availability = $%d", len(args)+1))
		args = append(args, *params.Availability)
	}
	if params.Image != nil {
		set = append(set, fmt.Sprintf("image = $%d", len(args)+1))
		args = append(args, *params.Image)
	}

	if len(set) == 0 {
		return r.GetMenuItem(ctx, id)
	}

	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE menu_items SET %s
		WHERE id = $%d
		RETURNING id, category_id, name, description, price, availability, image, created_at, updated_at
	`, strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var m MenuItem
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.CategoryID, &m.Name, &m.Description,
		&m.Price, &m.Availability, &m.Image, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) DeleteMenuItem(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *repository) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID).
		Scan(&exists)
	return exists, err
}
