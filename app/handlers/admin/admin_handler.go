package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/srikanth99-bot/looom-shop/app/helpers"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/sessions"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render    *render.Render
	store     *store.Store
	products  *services.ProductService
	landing   *services.LandingService
	sessions  sessions.AdminSessionStore
	validator *validator.Validate
}

func NewAdminHandler(r *render.Render, st *store.Store, products *services.ProductService, landing *services.LandingService, sess sessions.AdminSessionStore) *AdminHandler {
	return &AdminHandler{
		render:    r,
		store:     st,
		products:  products,
		landing:   landing,
		sessions:  sess,
		validator: validator.New(),
	}
}

func (h *AdminHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return false
	}
	return true
}

func (h *AdminHandler) validationError(w http.ResponseWriter, err error) {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(validationErrors),
		})
		return
	}
	h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed"})
}

type loginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login opens both the store session and the signed cookie on success. The
// store normalizes the credentials, so stray case and whitespace in the
// email are fine.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.validationError(w, err)
		return
	}

	if !h.store.AdminLogin(form.Email, form.Password) {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	if err := h.sessions.SetAdminSession(w, r); err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to open session"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.AdminLogout()
	if err := h.sessions.ClearAdminSession(w, r); err != nil {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear session"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Dashboard summarizes the back office: entity counts and unread
// notifications.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	orders := h.store.Orders()
	pending := 0
	for _, o := range orders {
		if o.Status == "pending" {
			pending++
		}
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":            len(h.store.Products()),
		"categories":          len(h.store.Categories()),
		"stories":             len(h.store.Stories()),
		"banners":             len(h.store.Banners()),
		"themes":              len(h.store.Themes()),
		"orders":              len(orders),
		"pendingOrders":       pending,
		"unreadNotifications": h.store.UnreadNotificationCount(),
	})
}

func (h *AdminHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.store.Notifications(),
		"unread":        h.store.UnreadNotificationCount(),
	})
}

func (h *AdminHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	var form struct {
		ID  string `json:"id"`
		All bool   `json:"all"`
	}
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if form.All {
		h.store.MarkAllNotificationsRead()
	} else {
		h.store.MarkNotificationRead(form.ID)
	}
	h.render.JSON(w, http.StatusOK, map[string]int{"unread": h.store.UnreadNotificationCount()})
}
