// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package database

import (
	"context"
	"fmt"

	"github.com/mgiordano/bellavista/internal/logging"
	"github.com/mgiordano/bellavista/internal/models"
)

// SeedDemoData populates the menu with the Bella Vista demo menu when the
// database is empty. Safe to call on every startup: it does nothing once
// any category exists.
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count menu categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedItem struct {
		name        string
		description string
		price       string
	}

	menu := []struct {
		category string
		items    []seedItem
	}{
		{
			category: "Antipasti",
			items: []seedItem{
				{"Bruschetta al Pomodoro", "Grilled bread with fresh tomatoes, basil, and extra virgin olive oil", "9.50"},
				{"Carpaccio di Manzo", "Thinly sliced raw beef with arugula, capers, and parmesan shavings", "14.00"},
				{"Burrata con Prosciutto", "Creamy burrata with San Daniele prosciutto and grilled peaches", "16.00"},
			},
		},
		{
			category: "Primi Piatti",
			items: []seedItem{
				{"Tagliatelle al Ragu", "Fresh egg pasta with slow-cooked beef and pork ragu", "18.50"},
				{"Risotto ai Funghi Porcini", "Carnaroli rice with porcini mushrooms and aged parmesan", "21.00"},
				{"Spaghetti alle Vongole", "Spaghetti with fresh clams, garlic, white wine, and parsley", "22.00"},
			},
		},
		{
			category: "Secondi Piatti",
			items: []seedItem{
				{"Branzino al Forno", "Whole roasted sea bass with cherry tomatoes and olives", "28.00"},
				{"Ossobuco alla Milanese", "Braised veal shank with saffron risotto and gremolata", "32.00"},
				{"Pollo al Mattone", "Brick-pressed chicken with rosemary potatoes and seasonal greens", "24.50"},
			},
		},
		{
			category: "Dolci",
			items: []seedItem{
				{"Tiramisu della Casa", "Classic tiramisu with espresso-soaked savoiardi and mascarpone", "8.50"},
				{"Panna Cotta ai Frutti di Bosco", "Vanilla panna cotta with wild berry compote", "8.00"},
			},
		},
	}

	for order, group := range menu {
		category, err := db.CreateMenuCategory(ctx, &models.MenuCategory{
			Name:         group.category,
			DisplayOrder: order + 1,
		})
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", group.category, err)
		}

		for itemOrder, item := range group.items {
			_, err := db.CreateMenuItem(ctx, &models.MenuItem{
				CategoryID:   category.ID,
				Name:         item.name,
				Description:  item.description,
				Price:        item.price,
				IsAvailable:  true,
				DisplayOrder: itemOrder + 1,
			})
			if err != nil {
				return fmt.Errorf("failed to seed item %s: %w", item.name, err)
			}
		}
	}

	logging.Info().Int("categories", len(menu)).Msg("Seeded demo menu data")

	return nil
}
