package handlers

import (
	"net/http"
	"time"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render   *render.Render
	products *services.ProductService
	landing  *services.LandingService
	store    *store.Store
}

func NewHomeHandler(r *render.Render, products *services.ProductService, landing *services.LandingService, st *store.Store) *HomeHandler {
	return &HomeHandler{render: r, products: products, landing: landing, store: st}
}

type homePayload struct {
	Settings models.LandingSettings `json:"settings"`
	Source   services.Source        `json:"source"`
	Stories  []models.Story         `json:"stories"`
	Banners  []models.Banner        `json:"banners"`
	Featured []models.Product       `json:"featured"`
}

// Home assembles the landing page: settings, live stories and banners in
// sort order, plus the featured carousel.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	landing := h.landing.GetSettings(r.Context())
	featured := h.products.GetFeatured(r.Context(), 8)
	now := time.Now()

	var stories []models.Story
	for _, st := range h.store.Stories() {
		if st.IsActive && st.LiveAt(now) {
			stories = append(stories, st)
		}
	}

	var banners []models.Banner
	for _, b := range h.store.Banners() {
		if b.IsActive {
			banners = append(banners, b)
		}
	}

	h.render.JSON(w, http.StatusOK, homePayload{
		Settings: landing.Settings,
		Source:   landing.Source,
		Stories:  stories,
		Banners:  banners,
		Featured: featured.Products,
	})
}
