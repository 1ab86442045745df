package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/srikanth99-bot/looom-shop/app/handlers"
	"github.com/srikanth99-bot/looom-shop/app/handlers/admin"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/renderer"
)

// stubSessionStore satisfies sessions.AdminSessionStore without cookies.
type stubSessionStore struct {
	admin bool
}

func (s *stubSessionStore) IsAdmin(r *http.Request) bool { return s.admin }

func (s *stubSessionStore) SetAdminSession(w http.ResponseWriter, r *http.Request) error {
	s.admin = true
	return nil
}

func (s *stubSessionStore) ClearAdminSession(w http.ResponseWriter, r *http.Request) error {
	s.admin = false
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	products := services.NewProductService(nil)
	landing := services.NewLandingService(nil)
	st := store.New(products, landing, store.WithStatePath(filepath.Join(t.TempDir(), "state.json")))
	r := renderer.New()
	sess := &stubSessionStore{}

	h := Handlers{
		Home:     handlers.NewHomeHandler(r, products, landing, st),
		Products: handlers.NewProductHandler(r, products, st),
		Cart:     handlers.NewCartHandler(r, products, st),
		Checkout: handlers.NewCheckoutHandler(r, st),
		Admin:    admin.NewAdminHandler(r, st, products, landing, sess),
	}
	return NewRouter(h, sess, st, Options{
		CSRFAuthKey: []byte("0123456789abcdef0123456789abcdef"),
		SecureCSRF:  false,
	})
}

// An authenticated JSON client obtains the token from any admin GET and
// echoes it in X-CSRF-Token on writes.
func TestAdminWritesWithCSRFTokenHeader(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    "admin@looom.shop",
		"password": "admin123",
	})
	resp, err := client.Post(srv.URL+"/admin/login", "application/json", bytes.NewReader(loginBody))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected login 200, got %d", resp.StatusCode)
	}

	resp, err = client.Get(srv.URL + "/admin/dashboard")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected dashboard 200, got %d", resp.StatusCode)
	}
	token := resp.Header.Get("X-CSRF-Token")
	if token == "" {
		t.Fatal("expected X-CSRF-Token header on admin responses")
	}

	categoryBody, _ := json.Marshal(map[string]string{"name": "Sarees"})

	// Without the token the write must be rejected.
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/admin/categories", bytes.NewReader(categoryBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("create category without token: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", resp.StatusCode)
	}

	// With the token it goes through.
	req, _ = http.NewRequest(http.MethodPost, srv.URL+"/admin/categories", bytes.NewReader(categoryBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", token)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 with token, got %d", resp.StatusCode)
	}
}

func TestAdminGateRejectsAnonymousClients(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/admin/dashboard")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous client, got %d", resp.StatusCode)
	}
}
