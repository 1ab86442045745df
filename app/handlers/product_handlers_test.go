package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/utils/renderer"
)

func newProductRouter(t *testing.T) *mux.Router {
	t.Helper()
	h := NewProductHandler(renderer.New(), services.NewProductService(nil), newTestStore(t))

	router := mux.NewRouter()
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/featured", h.FeaturedProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	return router
}

func TestListProductsDemoCatalog(t *testing.T) {
	router := newProductRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp services.ProductsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Source != services.SourceFallback {
		t.Fatalf("expected fallback source without a database, got %s", resp.Source)
	}
	if len(resp.Products) == 0 {
		t.Fatal("expected demo products")
	}
}

func TestListProductsSearchQuery(t *testing.T) {
	router := newProductRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?q=kalamkari", nil))

	var resp services.ProductsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Products) != 1 {
		t.Fatalf("expected 1 kalamkari match, got %d", len(resp.Products))
	}
}

func TestGetProductByID(t *testing.T) {
	router := newProductRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/prod_1001", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/prod_nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}
}

func TestFeaturedProducts(t *testing.T) {
	router := newProductRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/featured?limit=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp services.ProductsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Products) != 2 {
		t.Fatalf("expected 2 featured products, got %d", len(resp.Products))
	}
	for _, p := range resp.Products {
		if !p.Featured {
			t.Fatalf("%s is not featured", p.ID)
		}
	}
}
