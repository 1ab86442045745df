package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

type productForm struct {
	Name                    string           `json:"name" validate:"required"`
	Price                   decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice           *decimal.Decimal `json:"originalPrice"`
	Category                string           `json:"category" validate:"required"`
	Description             string           `json:"description"`
	Images                  []string         `json:"images"`
	Sizes                   []string         `json:"sizes"`
	Colors                  []string         `json:"colors"`
	Stock                   int              `json:"stock" validate:"min=0"`
	Featured                bool             `json:"featured"`
	Tags                    []string         `json:"tags"`
	SupportsFeedingFriendly bool             `json:"supportsFeedingFriendly"`
	IsStitchedDress         bool             `json:"isStitchedDress"`
}

func (f *productForm) toModel() models.Product {
	return models.Product{
		Name:                    f.Name,
		Price:                   f.Price,
		OriginalPrice:           f.OriginalPrice,
		Category:                f.Category,
		Description:             f.Description,
		Images:                  f.Images,
		Sizes:                   f.Sizes,
		Colors:                  f.Colors,
		Stock:                   f.Stock,
		Featured:                f.Featured,
		Tags:                    f.Tags,
		SupportsFeedingFriendly: f.SupportsFeedingFriendly,
		IsStitchedDress:         f.IsStitchedDress,
	}
}

func (h *AdminHandler) ListAdminProducts(w http.ResponseWriter, r *http.Request) {
	result := h.products.GetProducts(r.Context())
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": result.Products,
		"total":    result.Total,
		"source":   result.Source,
	})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form productForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}
	if form.Price.LessThanOrEqual(decimal.Zero) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "price must be greater than zero"})
		return
	}

	created, err := h.store.CreateProduct(r.Context(), form.toModel())
	if err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form productForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}
	if form.Price.LessThanOrEqual(decimal.Zero) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "price must be greater than zero"})
		return
	}

	product := form.toModel()
	product.ID = id
	updated, err := h.store.UpdateProduct(r.Context(), product)
	if err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
