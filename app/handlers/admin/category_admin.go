package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

type categoryForm struct {
	Name            string  `json:"name" validate:"required"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	AutoDescription string  `json:"autoDescription"`
	Image           string  `json:"image"`
	Icon            string  `json:"icon"`
	Color           string  `json:"color"`
	IsActive        bool    `json:"isActive"`
	ParentID        *string `json:"parentId"`
	SortOrder       int     `json:"sortOrder"`
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": h.store.Categories()})
}

// CreateCategory derives the tree level from the parent and enforces the
// two-level depth cap here, at the admin boundary, not in the data layer.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form categoryForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	level := 0
	if form.ParentID != nil && *form.ParentID != "" {
		parent, ok := h.findCategory(*form.ParentID)
		if !ok {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "parent category not found"})
			return
		}
		level = parent.Level + 1
		if level >= models.MaxCategoryDepth {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "category tree is limited to two levels"})
			return
		}
	}

	created := h.store.CreateCategory(models.Category{
		Name:            form.Name,
		Slug:            form.Slug,
		Description:     form.Description,
		AutoDescription: form.AutoDescription,
		Image:           form.Image,
		Icon:            form.Icon,
		Color:           form.Color,
		IsActive:        form.IsActive,
		Level:           level,
		ParentID:        form.ParentID,
		SortOrder:       form.SortOrder,
	})
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	existing, ok := h.findCategory(id)
	if !ok {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}

	var form categoryForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	updated := existing
	updated.Name = form.Name
	updated.Slug = form.Slug
	updated.Description = form.Description
	updated.AutoDescription = form.AutoDescription
	updated.Image = form.Image
	updated.Icon = form.Icon
	updated.Color = form.Color
	updated.IsActive = form.IsActive
	updated.SortOrder = form.SortOrder

	if err := h.store.UpdateCategory(updated); err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.findCategory(id); !ok {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}
	h.store.DeleteCategory(id)
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) findCategory(id string) (models.Category, bool) {
	for _, c := range h.store.Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
