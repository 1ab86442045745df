package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// fakeProductRepo is an in-memory ProductRepositoryImpl for service tests.
type fakeProductRepo struct {
	mu   sync.Mutex
	rows []models.ProductRow
	err  error
}

func (f *fakeProductRepo) snapshot() []models.ProductRow {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ProductRow, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *fakeProductRepo) GetProducts(ctx context.Context) ([]models.ProductRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot(), nil
}

func (f *fakeProductRepo) GetPaginated(ctx context.Context, limit, offset int) ([]models.ProductRow, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	rows := f.snapshot()
	return rows, int64(len(rows)), nil
}

func (f *fakeProductRepo) GetByCategoryPaginated(ctx context.Context, category string, limit, offset int) ([]models.ProductRow, int64, error) {
	return f.GetPaginated(ctx, limit, offset)
}

func (f *fakeProductRepo) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ProductRow, int64, error) {
	return f.GetPaginated(ctx, limit, offset)
}

func (f *fakeProductRepo) GetFeatured(ctx context.Context, limit int) ([]models.ProductRow, error) {
	return f.GetProducts(ctx)
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.ProductRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.snapshot() {
		if row.ID == id {
			return &row, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeProductRepo) Create(ctx context.Context, row *models.ProductRow) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *row)
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, row *models.ProductRow) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == row.ID {
			f.rows[i] = *row
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	filtered := f.rows[:0]
	for _, row := range f.rows {
		if row.ID != id {
			filtered = append(filtered, row)
		}
	}
	f.rows = filtered
	return nil
}

func TestConfiguredReadsServeLive(t *testing.T) {
	repo := &fakeProductRepo{rows: []models.ProductRow{
		{ID: "prod_live", Name: "Live Saree", Price: decimal.NewFromInt(900), Stock: 1},
	}}
	svc := NewProductService(repo)

	result := svc.GetProducts(context.Background())
	if result.Source != SourceLive {
		t.Fatalf("expected live source, got %s", result.Source)
	}
	if len(result.Products) != 1 || result.Products[0].ID != "prod_live" {
		t.Fatalf("unexpected products %+v", result.Products)
	}
}

func TestLiveReadErrorFallsBack(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("connection refused")}
	svc := NewProductService(repo)

	result := svc.GetProducts(context.Background())
	if result.Source != SourceFallback {
		t.Fatalf("expected fallback on backend error, got %s", result.Source)
	}
	if len(result.Products) == 0 {
		t.Fatal("expected demo products on fallback")
	}
}

func TestLiveWriteErrorIsReturned(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("disk full")}
	svc := NewProductService(repo)

	if _, err := svc.Create(context.Background(), models.Product{ID: "p", Name: "x", Price: decimal.NewFromInt(1)}); err == nil {
		t.Fatal("write errors must surface to the caller on a configured backend")
	}
}

func TestChangeFeedDebouncesBursts(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	var mu sync.Mutex
	calls := 0
	var last []models.Product
	unsubscribe := svc.SubscribeToProducts(func(products []models.Product) {
		mu.Lock()
		calls++
		last = products
		mu.Unlock()
	})
	defer unsubscribe()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), models.Product{
			ID:    fmt.Sprintf("prod_burst_%d", i),
			Name:  "Burst",
			Price: decimal.NewFromInt(10),
			Stock: 1,
		}); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		done := calls > 0
		mu.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("subscriber was never notified")
		case <-time.After(20 * time.Millisecond):
		}
	}

	// A burst of five writes inside the window collapses into one refetch.
	time.Sleep(2 * debounceWindow)
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected 1 debounced notification, got %d", calls)
	}
	if len(last) != 5 {
		t.Fatalf("expected the full refetched catalog, got %d products", len(last))
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	notified := make(chan struct{}, 1)
	unsubscribe := svc.SubscribeToProducts(func([]models.Product) {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	unsubscribe()

	if _, err := svc.Create(context.Background(), models.Product{ID: "p1", Name: "x", Price: decimal.NewFromInt(1)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	select {
	case <-notified:
		t.Fatal("unsubscribed callback must not fire")
	case <-time.After(2 * debounceWindow):
	}
}
