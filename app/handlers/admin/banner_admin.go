package admin

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

type bannerForm struct {
	Title       string     `json:"title" validate:"required"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Gradient    string     `json:"gradient"`
	BannerType  string     `json:"bannerType"`
	Height      string     `json:"height"`
	Position    string     `json:"position"`
	ButtonText  string     `json:"buttonText"`
	ButtonColor string     `json:"buttonColor"`
	ShowIcon    bool       `json:"showIcon"`
	IsActive    bool       `json:"isActive"`
	LinkType    string     `json:"linkType"`
	LinkValue   string     `json:"linkValue"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (f bannerForm) toModel() models.Banner {
	return models.Banner{
		Title:       f.Title,
		Subtitle:    f.Subtitle,
		Description: f.Description,
		Image:       f.Image,
		Gradient:    f.Gradient,
		BannerType:  f.BannerType,
		Height:      f.Height,
		Position:    f.Position,
		ButtonText:  f.ButtonText,
		ButtonColor: f.ButtonColor,
		ShowIcon:    f.ShowIcon,
		IsActive:    f.IsActive,
		LinkType:    f.LinkType,
		LinkValue:   f.LinkValue,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
	}
}

func (h *AdminHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"banners": h.store.Banners()})
}

func (h *AdminHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var form bannerForm
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

	created := h.store.CreateBanner(form.toModel())
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form bannerForm
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

	banner := form.toModel()
	banner.ID = id
	if err := h.store.UpdateBanner(banner); err != nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, banner)
}

func (h *AdminHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteBanner(mux.Vars(r)["id"])
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) ReorderBanners(w http.ResponseWriter, r *http.Request) {
	var form reorderForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	if err := h.store.ReorderBanners(form.IDs); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"banners": h.store.Banners()})
}
