package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/handlers"
	"github.com/srikanth99-bot/looom-shop/app/handlers/admin"
	"github.com/srikanth99-bot/looom-shop/app/middlewares"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/sessions"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Home     *handlers.HomeHandler
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Admin    *admin.AdminHandler
}

// Options carries router-level configuration.
type Options struct {
	CSRFAuthKey []byte
	SecureCSRF  bool
}

func NewRouter(h Handlers, adminSessions sessions.AdminSessionStore, appStore *store.Store, opts Options) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)

	// Storefront.
	router.HandleFunc("/", h.Home.Home).Methods("GET")
	router.HandleFunc("/api/products", h.Products.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/featured", h.Products.FeaturedProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.Products.GetProduct).Methods("GET")
	router.HandleFunc("/api/categories", h.Products.ListCategories).Methods("GET")

	// Cart.
	router.HandleFunc("/api/cart", h.Cart.GetCart).Methods("GET")
	router.HandleFunc("/api/cart/items", h.Cart.AddItem).Methods("POST")
	router.HandleFunc("/api/cart/items", h.Cart.UpdateItem).Methods("PUT")
	router.HandleFunc("/api/cart/items", h.Cart.RemoveItem).Methods("DELETE")

	// Checkout and order tracking.
	router.HandleFunc("/api/checkout", h.Checkout.PlaceOrder).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.Checkout.TrackOrder).Methods("GET")

	// Admin login sits outside the auth gate.
	router.HandleFunc("/admin/login", h.Admin.Login).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(adminSessions, appStore))
	if len(opts.CSRFAuthKey) > 0 {
		adminRouter.Use(csrf.Protect(opts.CSRFAuthKey,
			csrf.Secure(opts.SecureCSRF),
			csrf.Path("/admin"),
		))
		adminRouter.Use(csrfTokenHeader)
	}

	adminRouter.HandleFunc("/logout", h.Admin.Logout).Methods("POST")
	adminRouter.HandleFunc("/dashboard", h.Admin.Dashboard).Methods("GET")

	adminRouter.HandleFunc("/products", h.Admin.ListAdminProducts).Methods("GET")
	adminRouter.HandleFunc("/products", h.Admin.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", h.Admin.UpdateProduct).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}", h.Admin.DeleteProduct).Methods("DELETE")

	adminRouter.HandleFunc("/categories", h.Admin.ListCategories).Methods("GET")
	adminRouter.HandleFunc("/categories", h.Admin.CreateCategory).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", h.Admin.UpdateCategory).Methods("PUT")
	adminRouter.HandleFunc("/categories/{id}", h.Admin.DeleteCategory).Methods("DELETE")

	adminRouter.HandleFunc("/themes", h.Admin.ListThemes).Methods("GET")
	adminRouter.HandleFunc("/themes", h.Admin.CreateTheme).Methods("POST")
	adminRouter.HandleFunc("/themes/{id}", h.Admin.UpdateTheme).Methods("PUT")
	adminRouter.HandleFunc("/themes/{id}", h.Admin.DeleteTheme).Methods("DELETE")
	adminRouter.HandleFunc("/themes/{id}/default", h.Admin.SetDefaultTheme).Methods("POST")

	adminRouter.HandleFunc("/stories", h.Admin.ListStories).Methods("GET")
	adminRouter.HandleFunc("/stories", h.Admin.CreateStory).Methods("POST")
	adminRouter.HandleFunc("/stories/reorder", h.Admin.ReorderStories).Methods("POST")
	adminRouter.HandleFunc("/stories/{id}", h.Admin.UpdateStory).Methods("PUT")
	adminRouter.HandleFunc("/stories/{id}", h.Admin.DeleteStory).Methods("DELETE")

	adminRouter.HandleFunc("/banners", h.Admin.ListBanners).Methods("GET")
	adminRouter.HandleFunc("/banners", h.Admin.CreateBanner).Methods("POST")
	adminRouter.HandleFunc("/banners/reorder", h.Admin.ReorderBanners).Methods("POST")
	adminRouter.HandleFunc("/banners/{id}", h.Admin.UpdateBanner).Methods("PUT")
	adminRouter.HandleFunc("/banners/{id}", h.Admin.DeleteBanner).Methods("DELETE")

	adminRouter.HandleFunc("/orders", h.Admin.ListOrders).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", h.Admin.GetOrder).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}/status", h.Admin.UpdateOrderStatus).Methods("PUT")

	adminRouter.HandleFunc("/landing", h.Admin.GetLandingSettings).Methods("GET")
	adminRouter.HandleFunc("/landing", h.Admin.SaveLandingSettings).Methods("PUT")

	adminRouter.HandleFunc("/notifications", h.Admin.Notifications).Methods("GET")
	adminRouter.HandleFunc("/notifications/read", h.Admin.MarkNotificationRead).Methods("POST")

	return router
}

// csrfTokenHeader returns the per-request token on every admin response.
// JSON clients fetch any admin GET (e.g. /admin/dashboard) and echo the
// X-CSRF-Token header back on mutating requests.
func csrfTokenHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		next.ServeHTTP(w, r)
	})
}
