package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/unrolled/render"
)

const defaultPageSize = 24

type ProductHandler struct {
	render   *render.Render
	products *services.ProductService
	store    *store.Store
}

func NewProductHandler(r *render.Render, products *services.ProductService, st *store.Store) *ProductHandler {
	return &ProductHandler{render: r, products: products, store: st}
}

func paginationParams(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	return limit, (page - 1) * limit
}

// ListProducts serves the collection page: optional category filter and
// keyword search, repo-level pagination.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	var result services.ProductsResult
	switch {
	case r.URL.Query().Get("q") != "":
		result = h.products.Search(r.Context(), r.URL.Query().Get("q"), limit, offset)
	case r.URL.Query().Get("category") != "":
		result = h.products.GetByCategory(r.Context(), r.URL.Query().Get("category"), limit, offset)
	default:
		result = h.products.GetPaginated(r.Context(), limit, offset)
	}

	h.render.JSON(w, http.StatusOK, result)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := h.products.GetByID(r.Context(), id)
	if result.Product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, result)
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": h.store.Categories()})
}

func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := 8
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 24 {
		limit = v
	}
	h.render.JSON(w, http.StatusOK, h.products.GetFeatured(r.Context(), limit))
}
