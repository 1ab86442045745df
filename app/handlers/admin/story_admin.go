package admin

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

type storyForm struct {
	Title     string     `json:"title" validate:"required"`
	Subtitle  string     `json:"subtitle"`
	Image     string     `json:"image"`
	Gradient  string     `json:"gradient"`
	IsActive  bool       `json:"isActive"`
	LinkType  string     `json:"linkType"`
	LinkValue string     `json:"linkValue"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (f storyForm) toModel() models.Story {
	return models.Story{
		Title:     f.Title,
		Subtitle:  f.Subtitle,
		Image:     f.Image,
		Gradient:  f.Gradient,
		IsActive:  f.IsActive,
		LinkType:  f.LinkType,
		LinkValue: f.LinkValue,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}
}

func (h *AdminHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"stories": h.store.Stories()})
}

func (h *AdminHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var form storyForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}
	if form.LinkType != "" && !models.ValidLinkType(form.LinkType) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "unknown link type"})
		return
	}

	created := h.store.CreateStory(form.toModel())
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form storyForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}
	if form.LinkType != "" && !models.ValidLinkType(form.LinkType) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "unknown link type"})
		return
	}

	story := form.toModel()
	story.ID = id
	if err := h.store.UpdateStory(story); err != nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, story)
}

func (h *AdminHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteStory(mux.Vars(r)["id"])
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type reorderForm struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// ReorderStories rewrites every sort order from the submitted id list.
func (h *AdminHandler) ReorderStories(w http.ResponseWriter, r *http.Request) {
	var form reorderForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	if err := h.store.ReorderStories(form.IDs); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"stories": h.store.Stories()})
}
