package admin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/store"
)

func createTestOrder(t *testing.T, st *store.Store) string {
	t.Helper()
	id, err := st.CreateOrder(store.OrderDraft{
		CustomerName:  "Ravi",
		Email:         "ravi@example.com",
		Phone:         "9876543210",
		Address:       "Pochampally",
		PaymentMethod: "cod",
		Items: []models.OrderItem{
			{ProductID: "prod_1", Name: "Saree", Price: decimal.NewFromInt(500), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return id
}

func createTestStory(t *testing.T, st *store.Store, title string) models.Story {
	t.Helper()
	return st.CreateStory(models.Story{Title: title, IsActive: true})
}
