package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/repositories"
)

// ProductService owns catalog reads and writes with the degradation policy:
// when unconfigured, reads serve the mock catalog and writes simulate
// success without persisting; on a live backend error, reads log and fall
// back to mock data while writes return the error to the caller.
type ProductService struct {
	repo       repositories.ProductRepositoryImpl
	configured bool
	feed       *productFeed
}

func NewProductService(repo repositories.ProductRepositoryImpl) *ProductService {
	s := &ProductService{
		repo:       repo,
		configured: repo != nil,
	}
	s.feed = newProductFeed(s)
	return s
}

// Configured reports whether a live backend sits behind this service.
func (s *ProductService) Configured() bool { return s.configured }

func (s *ProductService) GetProducts(ctx context.Context) ProductsResult {
	if !s.configured {
		mock := MockProducts()
		return ProductsResult{Products: mock, Total: int64(len(mock)), Source: SourceFallback}
	}

	rows, err := s.repo.GetProducts(ctx)
	if err != nil {
		log.Printf("ProductService.GetProducts: backend error, serving fallback: %v", err)
		mock := MockProducts()
		return ProductsResult{Products: mock, Total: int64(len(mock)), Source: SourceFallback}
	}
	products := rowsToProducts(rows)
	return ProductsResult{Products: products, Total: int64(len(products)), Source: SourceLive}
}

func (s *ProductService) GetPaginated(ctx context.Context, limit, offset int) ProductsResult {
	if !s.configured {
		return paginateMock(MockProducts(), limit, offset)
	}

	rows, total, err := s.repo.GetPaginated(ctx, limit, offset)
	if err != nil {
		log.Printf("ProductService.GetPaginated: backend error, serving fallback: %v", err)
		return paginateMock(MockProducts(), limit, offset)
	}
	return ProductsResult{Products: rowsToProducts(rows), Total: total, Source: SourceLive}
}

func (s *ProductService) GetByCategory(ctx context.Context, category string, limit, offset int) ProductsResult {
	if !s.configured {
		return paginateMock(filterMockByCategory(category), limit, offset)
	}

	rows, total, err := s.repo.GetByCategoryPaginated(ctx, category, limit, offset)
	if err != nil {
		log.Printf("ProductService.GetByCategory: backend error, serving fallback: %v", err)
		return paginateMock(filterMockByCategory(category), limit, offset)
	}
	return ProductsResult{Products: rowsToProducts(rows), Total: total, Source: SourceLive}
}

func (s *ProductService) Search(ctx context.Context, keyword string, limit, offset int) ProductsResult {
	if !s.configured {
		return paginateMock(searchMock(keyword), limit, offset)
	}

	rows, total, err := s.repo.SearchPaginated(ctx, keyword, limit, offset)
	if err != nil {
		log.Printf("ProductService.Search: backend error, serving fallback: %v", err)
		return paginateMock(searchMock(keyword), limit, offset)
	}
	return ProductsResult{Products: rowsToProducts(rows), Total: total, Source: SourceLive}
}

func (s *ProductService) GetFeatured(ctx context.Context, limit int) ProductsResult {
	if !s.configured {
		mock := featuredMock(limit)
		return ProductsResult{Products: mock, Total: int64(len(mock)), Source: SourceFallback}
	}

	rows, err := s.repo.GetFeatured(ctx, limit)
	if err != nil {
		log.Printf("ProductService.GetFeatured: backend error, serving fallback: %v", err)
		mock := featuredMock(limit)
		return ProductsResult{Products: mock, Total: int64(len(mock)), Source: SourceFallback}
	}
	products := rowsToProducts(rows)
	return ProductsResult{Products: products, Total: int64(len(products)), Source: SourceLive}
}

// GetByID returns a nil Product when the id is unknown, on either path.
func (s *ProductService) GetByID(ctx context.Context, id string) ProductResult {
	if !s.configured {
		return ProductResult{Product: findMockByID(id), Source: SourceFallback}
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("ProductService.GetByID: backend error for %s, serving fallback: %v", id, err)
		return ProductResult{Product: findMockByID(id), Source: SourceFallback}
	}
	p := rowToProduct(*row)
	return ProductResult{Product: &p, Source: SourceLive}
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.InStock = p.Stock > 0

	if !s.configured {
		// Simulated success: caller gets a fully-shaped product back but
		// nothing is persisted.
		return p, nil
	}

	row := productToRow(p)
	if err := s.repo.Create(ctx, &row); err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	s.feed.notify()
	return rowToProduct(row), nil
}

func (s *ProductService) Update(ctx context.Context, p models.Product) (models.Product, error) {
	p.UpdatedAt = time.Now()
	p.InStock = p.Stock > 0

	if !s.configured {
		return p, nil
	}

	row := productToRow(p)
	if err := s.repo.Update(ctx, &row); err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	s.feed.notify()
	return rowToProduct(row), nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if !s.configured {
		return nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.feed.notify()
	return nil
}

// SubscribeToProducts registers cb on the change feed and returns its
// unsubscribe function. A no-op unsubscribe is returned when unconfigured.
func (s *ProductService) SubscribeToProducts(cb func([]models.Product)) func() {
	if !s.configured {
		return func() {}
	}
	return s.feed.subscribe(cb)
}

// NotifyChange signals an out-of-band catalog change (e.g. a seed run).
func (s *ProductService) NotifyChange() {
	if s.configured {
		s.feed.notify()
	}
}

func paginateMock(products []models.Product, limit, offset int) ProductsResult {
	total := int64(len(products))
	if offset >= len(products) {
		return ProductsResult{Products: []models.Product{}, Total: total, Source: SourceFallback}
	}
	end := offset + limit
	if limit <= 0 || end > len(products) {
		end = len(products)
	}
	return ProductsResult{Products: products[offset:end], Total: total, Source: SourceFallback}
}

func filterMockByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range MockProducts() {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func searchMock(keyword string) []models.Product {
	keyword = strings.ToLower(keyword)
	var out []models.Product
	for _, p := range MockProducts() {
		if strings.Contains(strings.ToLower(p.Name), keyword) || strings.Contains(strings.ToLower(p.Description), keyword) {
			out = append(out, p)
		}
	}
	return out
}

func featuredMock(limit int) []models.Product {
	var out []models.Product
	for _, p := range MockProducts() {
		if p.Featured {
			out = append(out, p)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func findMockByID(id string) *models.Product {
	for _, p := range MockProducts() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
