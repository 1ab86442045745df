package services

import (
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// Row/view-model transforms. Rows keep list-valued fields as JSON-encoded
// text and nullable columns; view models are fully typed. The transforms are
// the single place these two shapes meet.

func encodeList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	b, err := json.Marshal(list)
	if err != nil {
		log.Printf("encodeList: %v", err)
		return "[]"
	}
	return string(b)
}

func decodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("decodeList: bad list payload %q: %v", raw, err)
		return []string{}
	}
	return list
}

func rowToProduct(row models.ProductRow) models.Product {
	images := decodeList(row.Images)
	if len(images) == 0 {
		images = []string{models.PlaceholderImage}
	}

	p := models.Product{
		ID:                      row.ID,
		Name:                    row.Name,
		Price:                   row.Price,
		Category:                row.Category,
		Description:             row.Description,
		Images:                  images,
		Sizes:                   decodeList(row.Sizes),
		Colors:                  decodeList(row.Colors),
		Stock:                   row.Stock,
		InStock:                 row.Stock > 0,
		Featured:                row.Featured,
		Rating:                  row.Rating,
		ReviewCount:             row.ReviewCount,
		Tags:                    decodeList(row.Tags),
		SupportsFeedingFriendly: row.SupportsFeedingFriendly,
		IsStitchedDress:         row.IsStitchedDress,
		CreatedAt:               row.CreatedAt,
		UpdatedAt:               row.UpdatedAt,
	}
	if row.OriginalPrice.Valid {
		op := row.OriginalPrice.Decimal
		p.OriginalPrice = &op
	}
	return p
}

func productToRow(p models.Product) models.ProductRow {
	row := models.ProductRow{
		ID:                      p.ID,
		Name:                    p.Name,
		Price:                   p.Price,
		Category:                p.Category,
		Description:             p.Description,
		Images:                  encodeList(p.Images),
		Sizes:                   encodeList(p.Sizes),
		Colors:                  encodeList(p.Colors),
		Stock:                   p.Stock,
		Featured:                p.Featured,
		Rating:                  p.Rating,
		ReviewCount:             p.ReviewCount,
		Tags:                    encodeList(p.Tags),
		SupportsFeedingFriendly: p.SupportsFeedingFriendly,
		IsStitchedDress:         p.IsStitchedDress,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
	if p.OriginalPrice != nil {
		row.OriginalPrice = decimal.NullDecimal{Decimal: *p.OriginalPrice, Valid: true}
	}
	return row
}

func rowsToProducts(rows []models.ProductRow) []models.Product {
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, rowToProduct(row))
	}
	return products
}

func rowToLandingSettings(row models.LandingSettingsRow) models.LandingSettings {
	return models.LandingSettings{
		ID:                    row.ID,
		SiteName:              row.SiteName,
		HeroTitle:             row.HeroTitle,
		HeroSubtitle:          row.HeroSubtitle,
		BannerText:            row.BannerText,
		ShowBanner:            row.ShowBanner,
		BestSellingProductIDs: decodeList(row.BestSellingProductIDs),
		TrendingProductIDs:    decodeList(row.TrendingProductIDs),
		PopularCategoryIDs:    decodeList(row.PopularCategoryIDs),
		UpdatedAt:             row.UpdatedAt,
	}
}

func landingSettingsToRow(s models.LandingSettings) models.LandingSettingsRow {
	return models.LandingSettingsRow{
		ID:                    models.LandingSettingsID,
		SiteName:              s.SiteName,
		HeroTitle:             s.HeroTitle,
		HeroSubtitle:          s.HeroSubtitle,
		BannerText:            s.BannerText,
		ShowBanner:            s.ShowBanner,
		BestSellingProductIDs: encodeList(s.BestSellingProductIDs),
		TrendingProductIDs:    encodeList(s.TrendingProductIDs),
		PopularCategoryIDs:    encodeList(s.PopularCategoryIDs),
		UpdatedAt:             s.UpdatedAt,
	}
}
