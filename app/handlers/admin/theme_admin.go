package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

type themeForm struct {
	Name        string              `json:"name" validate:"required"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	Palette     models.ThemePalette `json:"palette"`
	IsActive    bool                `json:"isActive"`
	IsDefault   bool                `json:"isDefault"`
	Settings    map[string]bool     `json:"settings"`
}

func (h *AdminHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"themes": h.store.Themes()})
}

func (h *AdminHandler) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var form themeForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	created := h.store.CreateTheme(models.Theme{
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		Palette:     form.Palette,
		IsActive:    form.IsActive,
		IsDefault:   form.IsDefault,
		Settings:    form.Settings,
	})
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form themeForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	theme := models.Theme{
		ID:          id,
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		Palette:     form.Palette,
		IsActive:    form.IsActive,
		IsDefault:   form.IsDefault,
		Settings:    form.Settings,
	}
	if err := h.store.UpdateTheme(theme); err != nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, theme)
}

func (h *AdminHandler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteTheme(mux.Vars(r)["id"])
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// SetDefaultTheme flips the default flag to one theme and clears the rest.
func (h *AdminHandler) SetDefaultTheme(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.SetDefaultTheme(id); err != nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"themes": h.store.Themes()})
}
