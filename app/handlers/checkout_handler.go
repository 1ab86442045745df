package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/helpers"
	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/sessions"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	render   *render.Render
	store    *store.Store
	validate *validator.Validate
}

func NewCheckoutHandler(r *render.Render, st *store.Store) *CheckoutHandler {
	return &CheckoutHandler{render: r, store: st, validate: validator.New()}
}

type checkoutForm struct {
	CustomerName  string `json:"customerName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cod upi card"`
}

// PlaceOrder snapshots the caller's cart into order line items, creates the
// order and clears that cart. The order id comes back synchronously.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	cartID, err := sessions.GetCartID(w, r)
	if err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session unavailable"})
		return
	}

	var form checkoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": helpers.FormatValidationErrors(validationErrors),
			})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed"})
		return
	}

	cartItems := h.store.CartItems(cartID)
	if len(cartItems) == 0 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
		return
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:     ci.Product.ID,
			Name:          ci.Product.Name,
			Price:         ci.Product.Price,
			SelectedSize:  ci.SelectedSize,
			SelectedColor: ci.SelectedColor,
			Quantity:      ci.Quantity,
		})
	}

	orderID, err := h.store.CreateOrder(store.OrderDraft{
		CustomerName:  form.CustomerName,
		Email:         form.Email,
		Phone:         form.Phone,
		Address:       form.Address,
		PaymentMethod: form.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.store.ClearCart(cartID)

	order, _ := h.store.OrderByID(orderID)
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"orderId": orderID,
		"order":   order,
	})
}

// TrackOrder returns one order by id for the customer-facing tracking page.
func (h *CheckoutHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, ok := h.store.OrderByID(id)
	if !ok {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}
