package admin

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

type orderStatusForm struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": h.store.Orders()})
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.store.OrderByID(mux.Vars(r)["id"])
	if !ok {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form orderStatusForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	status := models.OrderStatus(form.Status)
	if !models.ValidOrderStatus(status) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "unknown order status"})
		return
	}

	if err := h.store.UpdateOrderStatus(id, status, form.Notes); err != nil {
		code := http.StatusNotFound
		if errors.Is(err, models.ErrInvalidTransition) {
			code = http.StatusConflict
		}
		h.render.JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	order, _ := h.store.OrderByID(id)
	h.render.JSON(w, http.StatusOK, order)
}
