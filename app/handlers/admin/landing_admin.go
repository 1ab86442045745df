package admin

import (
	"net/http"

	"github.com/srikanth99-bot/looom-shop/app/models"
)

type landingForm struct {
	SiteName              string   `json:"siteName" validate:"required"`
	HeroTitle             string   `json:"heroTitle"`
	HeroSubtitle          string   `json:"heroSubtitle"`
	BannerText            string   `json:"bannerText"`
	ShowBanner            bool     `json:"showBanner"`
	BestSellingProductIDs []string `json:"bestSellingProductIds"`
	TrendingProductIDs    []string `json:"trendingProductIds"`
	PopularCategoryIDs    []string `json:"popularCategoryIds"`
}

func (h *AdminHandler) GetLandingSettings(w http.ResponseWriter, r *http.Request) {
	result := h.landing.GetSettings(r.Context())
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"settings": result.Settings,
		"source":   result.Source,
	})
}

func (h *AdminHandler) SaveLandingSettings(w http.ResponseWriter, r *http.Request) {
	var form landingForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	saved, err := h.landing.SaveSettings(r.Context(), models.LandingSettings{
		SiteName:              form.SiteName,
		HeroTitle:             form.HeroTitle,
		HeroSubtitle:          form.HeroSubtitle,
		BannerText:            form.BannerText,
		ShowBanner:            form.ShowBanner,
		BestSellingProductIDs: form.BestSellingProductIDs,
		TrendingProductIDs:    form.TrendingProductIDs,
		PopularCategoryIDs:    form.PopularCategoryIDs,
	})
	if err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.store.SetLandingSettings(saved)
	h.render.JSON(w, http.StatusOK, saved)
}
