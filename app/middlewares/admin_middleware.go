package middlewares

import (
	"log"
	"net/http"

	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/sessions"
)

// AdminAuthMiddleware gates the admin subtree. Both the signed cookie and
// the store's session expiry must agree; either one lapsing forces a 401.
func AdminAuthMiddleware(adminStore sessions.AdminSessionStore, appStore *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !adminStore.IsAdmin(r) {
				log.Printf("AdminAuthMiddleware: no valid admin cookie for %s", r.URL.Path)
				http.Error(w, `{"error":"admin session required"}`, http.StatusUnauthorized)
				return
			}
			if !appStore.CheckAdminSession() {
				log.Printf("AdminAuthMiddleware: admin session expired for %s", r.URL.Path)
				http.Error(w, `{"error":"admin session expired"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
