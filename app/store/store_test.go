package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/services"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	base := []Option{WithStatePath(filepath.Join(t.TempDir(), "state.json"))}
	return New(services.NewProductService(nil), services.NewLandingService(nil), append(base, opts...)...)
}

func testProduct(id string, price int64) models.Product {
	return models.Product{
		ID:    id,
		Name:  "Test Saree " + id,
		Price: decimal.NewFromInt(price),
		Stock: 10,
	}
}

func testProductInCategory(id, category string) models.Product {
	p := testProduct(id, 500)
	p.Category = category
	return p
}

func TestAddToCartMergesByTriple(t *testing.T) {
	s := newTestStore(t)

	p := testProduct("prod_1", 500)
	s.AddToCart("cart_a", p, "Free Size", "Maroon", 1)
	s.AddToCart("cart_a", p, "Free Size", "Maroon", 2)
	s.AddToCart("cart_a", p, "Free Size", "Indigo", 1)

	items := s.CartItems("cart_a")
	if len(items) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", items[0].Quantity)
	}
	if s.CartCount("cart_a") != 4 {
		t.Fatalf("expected cart count 4, got %d", s.CartCount("cart_a"))
	}
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart("cart_a", testProduct("prod_1", 500), "", "", 0)
	items := s.CartItems("cart_a")
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected a single line with quantity 1, got %+v", items)
	}
}

func TestCartsArePartitionedBySession(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart("cart_a", testProduct("prod_1", 500), "", "", 1)
	s.AddToCart("cart_b", testProduct("prod_2", 300), "", "", 2)

	if got := s.CartCount("cart_a"); got != 1 {
		t.Fatalf("expected cart_a count 1, got %d", got)
	}
	if got := s.CartCount("cart_b"); got != 2 {
		t.Fatalf("expected cart_b count 2, got %d", got)
	}
	if items := s.CartItems("cart_a"); items[0].Product.ID != "prod_1" {
		t.Fatalf("cart_a holds someone else's line: %+v", items)
	}

	s.ClearCart("cart_a")
	if len(s.CartItems("cart_a")) != 0 {
		t.Fatal("expected cart_a empty after clear")
	}
	if got := s.CartCount("cart_b"); got != 2 {
		t.Fatalf("clearing cart_a touched cart_b, count %d", got)
	}
}

func TestUpdateCartQuantityRemovesAtZero(t *testing.T) {
	s := newTestStore(t)

	p := testProduct("prod_1", 500)
	s.AddToCart("cart_a", p, "", "", 2)

	key := models.CartKey{ProductID: "prod_1"}
	s.UpdateCartQuantity("cart_a", key, 5)
	if items := s.CartItems("cart_a"); items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}

	s.UpdateCartQuantity("cart_a", key, 0)
	if items := s.CartItems("cart_a"); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestCartSubtotal(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart("cart_a", testProduct("prod_1", 500), "", "", 1)
	s.AddToCart("cart_a", testProduct("prod_2", 300), "", "", 2)

	want := decimal.NewFromInt(1100)
	if got := s.CartSubtotal("cart_a"); !got.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, got)
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder(OrderDraft{
		CustomerName:  "Lakshmi",
		Email:         "lakshmi@example.com",
		Phone:         "9876543210",
		Address:       "Pochampally",
		PaymentMethod: "cod",
		Items: []models.OrderItem{
			{ProductID: "prod_1", Name: "Saree", Price: decimal.NewFromInt(500), Quantity: 1},
			{ProductID: "prod_2", Name: "Kurti", Price: decimal.NewFromInt(300), Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	order, ok := s.OrderByID(id)
	if !ok {
		t.Fatalf("order %s not found after create", id)
	}
	if !order.Subtotal.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected subtotal 1100, got %s", order.Subtotal)
	}
	if !order.ShippingCost.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected shipping 100, got %s", order.ShippingCost)
	}
	if !order.TaxAmount.Equal(decimal.NewFromInt(55)) {
		t.Fatalf("expected tax 55, got %s", order.TaxAmount)
	}
	if !order.GrandTotal.Equal(decimal.NewFromInt(1255)) {
		t.Fatalf("expected grand total 1255, got %s", order.GrandTotal)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected new order pending, got %s", order.Status)
	}
	if len(order.OrderCode) != 8 {
		t.Fatalf("expected 8-char order code, got %q", order.OrderCode)
	}
}

func TestCreateOrderFreeShippingOverThreshold(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder(OrderDraft{
		CustomerName:  "Ravi",
		PaymentMethod: "upi",
		Items: []models.OrderItem{
			{ProductID: "prod_1", Name: "Pattu Saree", Price: decimal.NewFromInt(2500), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	order, _ := s.OrderByID(id)
	if !order.ShippingCost.IsZero() {
		t.Fatalf("expected free shipping above threshold, got %s", order.ShippingCost)
	}
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateOrder(OrderDraft{CustomerName: "Ravi"}); err == nil {
		t.Fatal("expected error for empty order")
	}
}

func TestUpdateOrderStatusGuardsTransitions(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.CreateOrder(OrderDraft{
		CustomerName: "Ravi",
		Items:        []models.OrderItem{{ProductID: "p", Name: "x", Price: decimal.NewFromInt(100), Quantity: 1}},
	})

	if err := s.UpdateOrderStatus(id, models.OrderStatusShipped, ""); err == nil {
		t.Fatal("expected pending -> shipped to be rejected")
	}

	if err := s.UpdateOrderStatus(id, models.OrderStatusConfirmed, "picked up"); err != nil {
		t.Fatalf("pending -> confirmed should succeed: %v", err)
	}

	order, _ := s.OrderByID(id)
	if order.Status != models.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", order.Status)
	}
	if len(order.StatusHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(order.StatusHistory))
	}
	entry := order.StatusHistory[0]
	if entry.From != models.OrderStatusPending || entry.To != models.OrderStatusConfirmed || entry.Notes != "picked up" {
		t.Fatalf("unexpected history entry %+v", entry)
	}
}

func TestUpdateOrderStatusAllowAnyMode(t *testing.T) {
	s := newTestStore(t, WithAllowAnyTransition(true))

	id, _ := s.CreateOrder(OrderDraft{
		CustomerName: "Ravi",
		Items:        []models.OrderItem{{ProductID: "p", Name: "x", Price: decimal.NewFromInt(100), Quantity: 1}},
	})

	if err := s.UpdateOrderStatus(id, models.OrderStatusDelivered, ""); err != nil {
		t.Fatalf("allow-any mode should accept pending -> delivered: %v", err)
	}
	if err := s.UpdateOrderStatus(id, "teleported", ""); err == nil {
		t.Fatal("unknown status must be rejected even in allow-any mode")
	}
}

func TestCancelFromAnyNonTerminalStatus(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.CreateOrder(OrderDraft{
		CustomerName: "Ravi",
		Items:        []models.OrderItem{{ProductID: "p", Name: "x", Price: decimal.NewFromInt(100), Quantity: 1}},
	})

	for _, status := range []models.OrderStatus{models.OrderStatusConfirmed, models.OrderStatusPacked} {
		if err := s.UpdateOrderStatus(id, status, ""); err != nil {
			t.Fatalf("move to %s failed: %v", status, err)
		}
	}
	if err := s.UpdateOrderStatus(id, models.OrderStatusCancelled, "customer request"); err != nil {
		t.Fatalf("packed -> cancelled should succeed: %v", err)
	}
	if err := s.UpdateOrderStatus(id, models.OrderStatusShipped, ""); err == nil {
		t.Fatal("cancelled is terminal, further moves must fail")
	}
}

func TestAdminLoginNormalizesCredentials(t *testing.T) {
	s := newTestStore(t)

	if !s.AdminLogin("  ADMIN@LOOOM.SHOP  ", " admin123 ") {
		t.Fatal("expected login to succeed with padded, uppercased credentials")
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated state after login")
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	s := newTestStore(t)
	if s.AdminLogin("admin@looom.shop", "nope") {
		t.Fatal("expected login to fail")
	}
}

func TestAdminSessionExpiresAfterTTL(t *testing.T) {
	current := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return current }))

	if !s.AdminLogin("admin@looom.shop", "admin123") {
		t.Fatal("login failed")
	}
	if !s.CheckAdminSession() {
		t.Fatal("session should be live right after login")
	}

	current = current.Add(AdminSessionTTL - time.Second)
	if !s.CheckAdminSession() {
		t.Fatal("session should still be live one second before expiry")
	}

	current = current.Add(2 * time.Second)
	if s.CheckAdminSession() {
		t.Fatal("session should be expired past the TTL")
	}
	if s.IsAuthenticated() {
		t.Fatal("expiry must force a logout")
	}
}

func TestReorderStoriesRenumbersDense(t *testing.T) {
	s := newTestStore(t)

	a := s.CreateStory(models.Story{Title: "A", IsActive: true})
	b := s.CreateStory(models.Story{Title: "B", IsActive: true})
	c := s.CreateStory(models.Story{Title: "C", IsActive: true})

	if err := s.ReorderStories([]string{c.ID, a.ID}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	stories := s.Stories()
	wantOrder := []string{c.ID, a.ID, b.ID}
	for i, st := range stories {
		if st.ID != wantOrder[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantOrder[i], st.ID)
		}
		if st.SortOrder != i+1 {
			t.Fatalf("expected dense sort order %d, got %d", i+1, st.SortOrder)
		}
	}

	if err := s.ReorderStories([]string{"story_missing"}); err == nil {
		t.Fatal("unknown id must be rejected")
	}
	if err := s.ReorderStories([]string{a.ID, a.ID}); err == nil {
		t.Fatal("duplicate id must be rejected")
	}
}

func TestDeleteStoryRenumbers(t *testing.T) {
	s := newTestStore(t)

	a := s.CreateStory(models.Story{Title: "A"})
	s.CreateStory(models.Story{Title: "B"})

	s.DeleteStory(a.ID)
	stories := s.Stories()
	if len(stories) != 1 || stories[0].SortOrder != 1 {
		t.Fatalf("expected remaining story renumbered to 1, got %+v", stories)
	}
}

func TestSetDefaultThemeClearsOthers(t *testing.T) {
	s := newTestStore(t)

	a := s.CreateTheme(models.Theme{Name: "Festive", IsDefault: true})
	b := s.CreateTheme(models.Theme{Name: "Minimal"})

	if err := s.SetDefaultTheme(b.ID); err != nil {
		t.Fatalf("SetDefaultTheme failed: %v", err)
	}

	for _, theme := range s.Themes() {
		if theme.ID == b.ID && !theme.IsDefault {
			t.Fatal("new default not set")
		}
		if theme.ID == a.ID && theme.IsDefault {
			t.Fatal("old default not cleared")
		}
	}
}

func TestCategoryProductCountsTrackCatalog(t *testing.T) {
	s := newTestStore(t)
	s.CreateCategory(models.Category{Name: "Sarees"})

	ctx := context.Background()
	if _, err := s.CreateProduct(ctx, testProductInCategory("prod_1", "Sarees")); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := s.CreateProduct(ctx, testProductInCategory("prod_2", "sarees")); err != nil {
		t.Fatalf("create product: %v", err)
	}

	if got := s.Categories()[0].ProductCount; got != 2 {
		t.Fatalf("expected count 2 after case-insensitive match, got %d", got)
	}

	if err := s.DeleteProduct(ctx, "prod_1"); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if got := s.Categories()[0].ProductCount; got != 1 {
		t.Fatalf("expected count 1 after delete, got %d", got)
	}
}

func TestDeleteCategoryCascadesToChildren(t *testing.T) {
	s := newTestStore(t)

	parent := s.CreateCategory(models.Category{Name: "Sarees"})
	s.CreateCategory(models.Category{Name: "Silk Sarees", Level: 1, ParentID: &parent.ID})
	s.CreateCategory(models.Category{Name: "Kurtis"})

	s.DeleteCategory(parent.ID)

	remaining := s.Categories()
	if len(remaining) != 1 || remaining[0].Name != "Kurtis" {
		t.Fatalf("expected only the unrelated category to survive, got %+v", remaining)
	}
}

func TestNotificationsUnreadCount(t *testing.T) {
	s := newTestStore(t)

	n1 := s.AddNotification("first")
	s.AddNotification("second")

	if got := s.UnreadNotificationCount(); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}

	s.MarkNotificationRead(n1.ID)
	if got := s.UnreadNotificationCount(); got != 1 {
		t.Fatalf("expected 1 unread, got %d", got)
	}

	s.MarkAllNotificationsRead()
	if got := s.UnreadNotificationCount(); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}
}

func TestPersistedStateSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	products := services.NewProductService(nil)
	landing := services.NewLandingService(nil)

	s := New(products, landing, WithStatePath(path))
	s.AddToCart("cart_a", testProduct("prod_1", 500), "Free Size", "Maroon", 2)
	s.CreateCategory(models.Category{Name: "Sarees"})
	s.SetProducts([]models.Product{testProduct("prod_ephemeral", 1)})

	restarted := New(services.NewProductService(nil), services.NewLandingService(nil), WithStatePath(path))

	items := restarted.CartItems("cart_a")
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected cart to survive restart, got %+v", items)
	}
	if len(restarted.Categories()) != 1 {
		t.Fatalf("expected categories to survive restart, got %d", len(restarted.Categories()))
	}
	if len(restarted.Products()) != 0 {
		t.Fatal("products must not persist, they are reloaded from the backend")
	}
}

func TestLoadIgnoresCorruptStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt state: %v", err)
	}

	s := New(services.NewProductService(nil), services.NewLandingService(nil), WithStatePath(path))
	if len(s.CartItems("cart_a")) != 0 {
		t.Fatal("corrupt state should give a fresh store")
	}
}

func TestInitializeAppSeedsAndIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	s.InitializeApp(context.Background())
	if !s.IsInitialized() {
		t.Fatal("expected initialized after InitializeApp")
	}
	if len(s.Products()) == 0 {
		t.Fatal("expected demo products after init without a database")
	}
	if len(s.Categories()) == 0 || len(s.Themes()) == 0 || len(s.Stories()) == 0 || len(s.Banners()) == 0 {
		t.Fatal("expected demo catalog entities seeded")
	}

	countBefore := len(s.Categories())
	s.InitializeApp(context.Background())
	if len(s.Categories()) != countBefore {
		t.Fatal("second InitializeApp must be a no-op")
	}
}

func TestOrderCreationAddsPaymentAndNotification(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.CreateOrder(OrderDraft{
		CustomerName:  "Ravi",
		PaymentMethod: "cod",
		Items:         []models.OrderItem{{ProductID: "p", Name: "x", Price: decimal.NewFromInt(100), Quantity: 1}},
	})

	if id == "" {
		t.Fatal("expected an order id")
	}
	if got := s.UnreadNotificationCount(); got != 1 {
		t.Fatalf("expected 1 unread notification, got %d", got)
	}
}
