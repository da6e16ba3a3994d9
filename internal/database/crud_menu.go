// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mgiordano/bellavista/internal/models"
)

// GetMenuCategories retrieves all menu categories ordered for display.
func (db *DB) GetMenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	query := `SELECT id, name, display_order, created_at
	FROM menu_categories ORDER BY display_order ASC, name ASC`

	rows, err := db.query(ctx, "select", "menu_categories", query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.MenuCategory, 0)
	for rows.Next() {
		var c models.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu categories: %w", err)
	}

	return categories, nil
}

// CreateMenuCategory creates a new menu category.
func (db *DB) CreateMenuCategory(ctx context.Context, category *models.MenuCategory) (*models.MenuCategory, error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}

	query := `INSERT INTO menu_categories (id, name, display_order, created_at) VALUES (?, ?, ?, ?)`

	_, err := db.exec(ctx, "insert", "menu_categories", query,
		category.ID, category.Name, category.DisplayOrder, category.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to create menu category: %w", err)
	}

	return category, nil
}

// GetMenuItems retrieves the available menu items ordered for display.
// Items with the availability flag off never appear in public listings.
func (db *DB) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	query := menuItemColumns + ` FROM menu_items WHERE is_available = true
	ORDER BY display_order ASC, name ASC`

	rows, err := db.query(ctx, "select", "menu_items", query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return collectMenuItems(rows)
}

// GetMenuItemsByCategory retrieves the available menu items belonging to
// one category.
func (db *DB) GetMenuItemsByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	query := menuItemColumns + ` FROM menu_items WHERE category_id = ? AND is_available = true
	ORDER BY display_order ASC, name ASC`

	rows, err := db.query(ctx, "select", "menu_items", query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items by category: %w", err)
	}
	defer rows.Close()

	return collectMenuItems(rows)
}

// GetMenuItem retrieves a single menu item by ID.
func (db *DB) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	query := menuItemColumns + ` FROM menu_items WHERE id = ?`

	rows, err := db.query(ctx, "select", "menu_items", query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}
	defer rows.Close()

	items, err := collectMenuItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrMenuItemNotFound
	}
	return &items[0], nil
}

// CreateMenuItem creates a new menu item.
func (db *DB) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = item.CreatedAt

	query := `INSERT INTO menu_items (
		id, category_id, name, description, price, image_url,
		is_available, display_order, created_at, updated_at
	) VALUES (?, ?, ?, ?, CAST(? AS DECIMAL(10,2)), ?, ?, ?, ?, ?)`

	_, err := db.exec(ctx, "insert", "menu_items", query,
		item.ID, item.CategoryID, item.Name, nullString(item.Description), item.Price,
		nullString(item.ImageURL), item.IsAvailable, item.DisplayOrder,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return db.GetMenuItem(ctx, item.ID)
}

// UpdateMenuItem applies a partial update to a menu item. Nil fields in
// the update are left unchanged. Returns ErrMenuItemNotFound if no row
// matches the ID.
func (db *DB) UpdateMenuItem(ctx context.Context, id string, update *models.MenuItemUpdate) (*models.MenuItem, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if update.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *update.CategoryID)
	}
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullStringPtr(update.Description))
	}
	if update.Price != nil {
		sets = append(sets, "price = CAST(? AS DECIMAL(10,2))")
		args = append(args, *update.Price)
	}
	if update.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, nullStringPtr(update.ImageURL))
	}
	if update.IsAvailable != nil {
		sets = append(sets, "is_available = ?")
		args = append(args, *update.IsAvailable)
	}
	if update.DisplayOrder != nil {
		sets = append(sets, "display_order = ?")
		args = append(args, *update.DisplayOrder)
	}

	query := "UPDATE menu_items SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := db.exec(ctx, "update", "menu_items", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrMenuItemNotFound
	}

	return db.GetMenuItem(ctx, id)
}

// DeleteMenuItem removes a menu item. Deleting a missing item is a no-op.
func (db *DB) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := db.exec(ctx, "delete", "menu_items", `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

// menuItemColumns selects menu item fields with the price rendered as a
// fixed-point string.
const menuItemColumns = `SELECT
	id, category_id, name, description, CAST(price AS VARCHAR), image_url,
	is_available, display_order, created_at, updated_at`

// collectMenuItems scans all rows into a slice of menu items.
func collectMenuItems(rows *sql.Rows) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		var description, imageURL sql.NullString

		err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &description, &item.Price,
			&imageURL, &item.IsAvailable, &item.DisplayOrder, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		item.Description = description.String
		item.ImageURL = imageURL.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}
