package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/sessions"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render   *render.Render
	products *services.ProductService
	store    *store.Store
	validate *validator.Validate
}

func NewCartHandler(r *render.Render, products *services.ProductService, st *store.Store) *CartHandler {
	return &CartHandler{render: r, products: products, store: st, validate: validator.New()}
}

type cartPayload struct {
	Items    []models.CartItem `json:"items"`
	Count    int               `json:"count"`
	Subtotal string            `json:"subtotal"`
}

func (h *CartHandler) cartPayload(cartID string) cartPayload {
	return cartPayload{
		Items:    h.store.CartItems(cartID),
		Count:    h.store.CartCount(cartID),
		Subtotal: h.store.CartSubtotal(cartID).StringFixed(2),
	}
}

// cartID resolves the caller's cart session, minting one on first use. A
// false return means the error response has already been written.
func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) (string, bool) {
	cartID, err := sessions.GetCartID(w, r)
	if err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session unavailable"})
		return "", false
	}
	return cartID, true
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}
	h.render.JSON(w, http.StatusOK, h.cartPayload(cartID))
}

type addToCartForm struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var form addToCartForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}

	result := h.products.GetByID(r.Context(), form.ProductID)
	if result.Product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	h.store.AddToCart(cartID, *result.Product, form.Size, form.Color, form.Quantity)
	h.render.JSON(w, http.StatusOK, h.cartPayload(cartID))
}

type updateCartForm struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var form updateCartForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}

	key := models.CartKey{ProductID: form.ProductID, Size: form.Size, Color: form.Color}
	h.store.UpdateCartQuantity(cartID, key, form.Quantity)
	h.render.JSON(w, http.StatusOK, h.cartPayload(cartID))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var form updateCartForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	key := models.CartKey{ProductID: form.ProductID, Size: form.Size, Color: form.Color}
	h.store.RemoveFromCart(cartID, key)
	h.render.JSON(w, http.StatusOK, h.cartPayload(cartID))
}
