package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

func TestMockProductsDeterministic(t *testing.T) {
	first := MockProducts()
	second := MockProducts()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("mock catalog must be identical across calls")
	}
}

func TestUnconfiguredReadsServeFallback(t *testing.T) {
	svc := NewProductService(nil)

	if svc.Configured() {
		t.Fatal("service with nil repo must report unconfigured")
	}

	result := svc.GetProducts(context.Background())
	if result.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", result.Source)
	}
	if len(result.Products) == 0 {
		t.Fatal("expected demo products")
	}
	if result.Total != int64(len(result.Products)) {
		t.Fatalf("total %d does not match %d products", result.Total, len(result.Products))
	}
}

func TestGetPaginatedMock(t *testing.T) {
	svc := NewProductService(nil)

	page1 := svc.GetPaginated(context.Background(), 4, 0)
	if len(page1.Products) != 4 {
		t.Fatalf("expected 4 products on page 1, got %d", len(page1.Products))
	}
	page2 := svc.GetPaginated(context.Background(), 4, 4)
	if len(page2.Products) != 2 {
		t.Fatalf("expected 2 products on page 2, got %d", len(page2.Products))
	}
	if page1.Total != 6 || page2.Total != 6 {
		t.Fatalf("expected total 6 on both pages, got %d and %d", page1.Total, page2.Total)
	}

	beyond := svc.GetPaginated(context.Background(), 4, 100)
	if len(beyond.Products) != 0 {
		t.Fatal("offset past the end must return an empty page")
	}
}

func TestGetByCategoryMockIsCaseInsensitive(t *testing.T) {
	svc := NewProductService(nil)

	result := svc.GetByCategory(context.Background(), "sarees", 10, 0)
	if len(result.Products) != 2 {
		t.Fatalf("expected 2 sarees, got %d", len(result.Products))
	}
	for _, p := range result.Products {
		if p.Category != "Sarees" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}

func TestSearchMockMatchesNameAndDescription(t *testing.T) {
	svc := NewProductService(nil)

	byName := svc.Search(context.Background(), "kalamkari", 10, 0)
	if len(byName.Products) == 0 {
		t.Fatal("expected a match on name")
	}

	byDescription := svc.Search(context.Background(), "feeding zips", 10, 0)
	if len(byDescription.Products) != 1 {
		t.Fatalf("expected 1 match on description, got %d", len(byDescription.Products))
	}
}

func TestGetFeaturedMockHonorsLimit(t *testing.T) {
	svc := NewProductService(nil)

	result := svc.GetFeatured(context.Background(), 2)
	if len(result.Products) != 2 {
		t.Fatalf("expected 2 featured products, got %d", len(result.Products))
	}
	if result.Total != 2 {
		t.Fatalf("expected total 2, got %d", result.Total)
	}
	for _, p := range result.Products {
		if !p.Featured {
			t.Fatalf("%s is not featured", p.ID)
		}
	}
}

func TestGetByIDMock(t *testing.T) {
	svc := NewProductService(nil)

	found := svc.GetByID(context.Background(), "prod_1001")
	if found.Product == nil {
		t.Fatal("expected prod_1001 in the demo catalog")
	}
	if found.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", found.Source)
	}

	missing := svc.GetByID(context.Background(), "prod_none")
	if missing.Product != nil {
		t.Fatal("unknown id must return a nil product")
	}
}

func TestUnconfiguredWritesSimulateSuccess(t *testing.T) {
	svc := NewProductService(nil)

	created, err := svc.Create(context.Background(), models.Product{
		ID:    "prod_new",
		Name:  "Uppada Saree",
		Price: decimal.NewFromInt(3200),
		Stock: 5,
	})
	if err != nil {
		t.Fatalf("simulated create must not error: %v", err)
	}
	if !created.InStock {
		t.Fatal("InStock must be derived from stock on create")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be stamped on create")
	}

	// The simulated write leaves the catalog untouched.
	if p := svc.GetByID(context.Background(), "prod_new"); p.Product != nil {
		t.Fatal("simulated create must not persist")
	}

	if err := svc.Delete(context.Background(), "prod_1001"); err != nil {
		t.Fatalf("simulated delete must not error: %v", err)
	}
}

func TestRowToProductDefaults(t *testing.T) {
	row := models.ProductRow{
		ID:     "prod_row",
		Name:   "Bare Row",
		Price:  decimal.NewFromInt(700),
		Images: "",
		Stock:  3,
	}

	p := rowToProduct(row)
	if len(p.Images) != 1 || p.Images[0] != models.PlaceholderImage {
		t.Fatalf("expected placeholder image, got %v", p.Images)
	}
	if !p.InStock {
		t.Fatal("stock 3 must derive InStock true")
	}
	if p.OriginalPrice != nil {
		t.Fatal("invalid NullDecimal must map to a nil original price")
	}

	row.Stock = 0
	if rowToProduct(row).InStock {
		t.Fatal("stock 0 must derive InStock false")
	}
}

func TestProductRowRoundTripLists(t *testing.T) {
	p := models.Product{
		ID:     "prod_rt",
		Name:   "Roundtrip",
		Price:  decimal.NewFromInt(100),
		Images: []string{"/images/a.jpg"},
		Sizes:  []string{"S", "M"},
		Colors: []string{"Teal"},
		Tags:   []string{"cotton"},
		Stock:  1,
	}

	got := rowToProduct(productToRow(p))
	if !reflect.DeepEqual(got.Sizes, p.Sizes) || !reflect.DeepEqual(got.Colors, p.Colors) || !reflect.DeepEqual(got.Tags, p.Tags) {
		t.Fatalf("list fields did not survive the row transform: %+v", got)
	}
}

func TestLandingServiceFallback(t *testing.T) {
	svc := NewLandingService(nil)

	result := svc.GetSettings(context.Background())
	if result.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", result.Source)
	}
	if result.Settings.ID != models.LandingSettingsID {
		t.Fatalf("expected the singleton id, got %q", result.Settings.ID)
	}

	saved, err := svc.SaveSettings(context.Background(), models.LandingSettings{SiteName: "test"})
	if err != nil {
		t.Fatalf("simulated save must not error: %v", err)
	}
	if saved.ID != models.LandingSettingsID {
		t.Fatal("save must pin the singleton id")
	}
}
