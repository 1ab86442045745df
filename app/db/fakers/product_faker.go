package fakers

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

var handloomNames = []string{
	"Pochampally Ikkat Saree",
	"Gadwal Silk Saree",
	"Narayanpet Cotton Saree",
	"Mangalagiri Dress Material",
	"Kalamkari Printed Kurti",
	"Uppada Jamdani Saree",
	"Venkatagiri Cotton Saree",
	"Dharmavaram Pattu Saree",
}

var handloomCategories = []string{"Sarees", "Dress Materials", "Kurtis", "Fabrics"}

var colorPool = []string{"Maroon", "Indigo", "Mustard", "Teal", "Beige", "Rust"}

// ProductFaker builds one random catalog row for seeding. Names come from a
// fixed handloom pool so the seeded storefront reads plausibly.
func ProductFaker() *models.ProductRow {
	name := handloomNames[rand.Intn(len(handloomNames))]
	id := "prod_" + uuid.NewString()[:8]

	price := decimal.NewFromInt(int64(rand.Intn(4500) + 500))
	images := jsonList([]string{
		"/images/products/" + slug.Make(name) + "-1.jpg",
		"/images/products/" + slug.Make(name) + "-2.jpg",
	})

	colors := []string{
		colorPool[rand.Intn(len(colorPool))],
		colorPool[rand.Intn(len(colorPool))],
	}

	return &models.ProductRow{
		ID:            id,
		Name:          name,
		Price:         price,
		OriginalPrice: decimal.NullDecimal{Decimal: price.Add(decimal.NewFromInt(300)), Valid: rand.Intn(2) == 0},
		Category:      handloomCategories[rand.Intn(len(handloomCategories))],
		Description:   faker.Paragraph(),
		Images:        images,
		Sizes:         jsonList([]string{"Free Size"}),
		Colors:        jsonList(colors),
		Stock:         rand.Intn(20),
		Featured:      rand.Intn(3) == 0,
		Rating:        float64(rand.Intn(21))/10 + 2.5,
		ReviewCount:   rand.Intn(120),
		Tags:          jsonList([]string{"handloom", slug.Make(name)}),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func jsonList(values []string) string {
	b, _ := json.Marshal(values)
	return string(b)
}
