// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"errors"
	"net/http"

	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/logging"
	"github.com/mgiordano/bellavista/internal/models"
)

// MenuCategories returns all menu categories in display order.
func (h *Handler) MenuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.db.GetMenuCategories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch menu categories", err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// MenuItems returns all menu items in display order.
func (h *Handler) MenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.db.GetMenuItems(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch menu items", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// MenuItemsByCategory returns the menu items of one category.
func (h *Handler) MenuItemsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryId")
	if categoryID == "" {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Category ID is required", nil)
		return
	}

	items, err := h.db.GetMenuItemsByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch menu items", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// CreateMenuCategory creates a new menu category. Admin only.
func (h *Handler) CreateMenuCategory(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	var req CreateMenuCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	category, err := h.db.CreateMenuCategory(r.Context(), &models.MenuCategory{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateCategory) {
			respondError(w, http.StatusConflict, ErrCodeBadRequest, "A category with this name already exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create menu category", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("category_id", category.ID).Msg("Menu category created")

	respondJSON(w, http.StatusCreated, category)
}

// CreateMenuItem creates a new menu item. Admin only.
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	var req CreateMenuItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := h.db.CreateMenuItem(r.Context(), &models.MenuItem{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  isAvailable,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create menu item", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("item_id", item.ID).Msg("Menu item created")

	respondJSON(w, http.StatusCreated, item)
}

// UpdateMenuItem applies a partial update to a menu item. Admin only.
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	id := r.PathValue("id")

	var req UpdateMenuItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	item, err := h.db.UpdateMenuItem(r.Context(), id, &models.MenuItemUpdate{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, database.ErrMenuItemNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "Menu item not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to update menu item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// DeleteMenuItem removes a menu item. Admin only. Deleting a missing item
// succeeds with no effect.
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	id := r.PathValue("id")

	if err := h.db.DeleteMenuItem(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to delete menu item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
