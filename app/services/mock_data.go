package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// Static demo catalog served whenever the database is unavailable. Contents
// are deterministic: repeated calls return the same data.

var mockEpoch = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pricePtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func MockProducts() []models.Product {
	return []models.Product{
		{
			ID:            "prod_1001",
			Name:          "Pochampally Ikat Silk Saree",
			Price:         price(4999),
			OriginalPrice: pricePtr(6499),
			Category:      "Sarees",
			Description:   "Handwoven double ikat silk saree from Pochampally with traditional geometric motifs.",
			Images:        []string{"/images/products/pochampally-ikat-1.jpg", "/images/products/pochampally-ikat-2.jpg"},
			Sizes:         []string{"Free Size"},
			Colors:        []string{"Maroon", "Indigo"},
			Stock:         12,
			InStock:       true,
			Featured:      true,
			Rating:        4.8,
			ReviewCount:   124,
			Tags:          []string{"silk", "ikat", "wedding"},
			CreatedAt:     mockEpoch,
			UpdatedAt:     mockEpoch,
		},
		{
			ID:              "prod_1002",
			Name:            "Mangalagiri Cotton Dress Material",
			Price:           price(1299),
			Category:        "Dress Materials",
			Description:     "Crisp Mangalagiri cotton with zari border, unstitched three piece set.",
			Images:          []string{"/images/products/mangalagiri-cotton-1.jpg"},
			Sizes:           []string{"2.5m", "5m"},
			Colors:          []string{"Mustard", "Teal", "Rose"},
			Stock:           30,
			InStock:         true,
			Rating:          4.5,
			ReviewCount:     68,
			Tags:            []string{"cotton", "daily-wear"},
			IsStitchedDress: false,
			CreatedAt:       mockEpoch,
			UpdatedAt:       mockEpoch,
		},
		{
			ID:            "prod_1003",
			Name:          "Kalamkari Hand-Painted Dupatta",
			Price:         price(899),
			OriginalPrice: pricePtr(1199),
			Category:      "Dupattas",
			Description:   "Pen kalamkari dupatta on soft cotton, natural dyes, one of a kind print.",
			Images:        []string{"/images/products/kalamkari-dupatta-1.jpg"},
			Sizes:         []string{"Free Size"},
			Colors:        []string{"Beige", "Black"},
			Stock:         18,
			InStock:       true,
			Featured:      true,
			Rating:        4.7,
			ReviewCount:   41,
			Tags:          []string{"kalamkari", "natural-dye"},
			CreatedAt:     mockEpoch,
			UpdatedAt:     mockEpoch,
		},
		{
			ID:                      "prod_1004",
			Name:                    "Handloom Feeding Kurti",
			Price:                   price(1599),
			Category:                "Kurtis",
			Description:             "Soft mul cotton kurti with concealed feeding zips, fully stitched.",
			Images:                  []string{"/images/products/feeding-kurti-1.jpg"},
			Sizes:                   []string{"S", "M", "L", "XL"},
			Colors:                  []string{"Sage", "Coral"},
			Stock:                   22,
			InStock:                 true,
			Rating:                  4.6,
			ReviewCount:             87,
			Tags:                    []string{"cotton", "feeding-friendly"},
			SupportsFeedingFriendly: true,
			IsStitchedDress:         true,
			CreatedAt:               mockEpoch,
			UpdatedAt:               mockEpoch,
		},
		{
			ID:          "prod_1005",
			Name:        "Gadwal Pattu Saree",
			Price:       price(8499),
			Category:    "Sarees",
			Description: "Gadwal silk-cotton saree with kuttu border and rich pallu.",
			Images:      []string{"/images/products/gadwal-pattu-1.jpg"},
			Sizes:       []string{"Free Size"},
			Colors:      []string{"Peacock Green"},
			Stock:       0,
			InStock:     false,
			Featured:    true,
			Rating:      4.9,
			ReviewCount: 203,
			Tags:        []string{"silk", "handloom", "festive"},
			CreatedAt:   mockEpoch,
			UpdatedAt:   mockEpoch,
		},
		{
			ID:          "prod_1006",
			Name:        "Ikkat Cotton Running Fabric",
			Price:       price(499),
			Category:    "Fabrics",
			Description: "Telia rumal inspired ikkat cotton fabric, priced per metre.",
			Images:      []string{},
			Sizes:       []string{"1m"},
			Colors:      []string{"Red-Black", "Blue-White"},
			Stock:       120,
			InStock:     true,
			Rating:      4.3,
			ReviewCount: 19,
			Tags:        []string{"fabric", "ikat"},
			CreatedAt:   mockEpoch,
			UpdatedAt:   mockEpoch,
		},
	}
}

func MockLandingSettings() models.LandingSettings {
	return models.LandingSettings{
		ID:                    models.LandingSettingsID,
		SiteName:              "looom.shop",
		HeroTitle:             "Handloom, straight from the weaver",
		HeroSubtitle:          "Authentic ikat, kalamkari and pattu from Telangana and Andhra looms",
		BannerText:            "Free shipping on orders above ₹2000",
		ShowBanner:            true,
		BestSellingProductIDs: []string{"prod_1001", "prod_1005"},
		TrendingProductIDs:    []string{"prod_1003", "prod_1004"},
		PopularCategoryIDs:    []string{"cat_100", "cat_101"},
		UpdatedAt:             mockEpoch,
	}
}

func MockCategories() []models.Category {
	return []models.Category{
		{ID: "cat_100", Name: "Sarees", Slug: "sarees", Icon: "🥻", Color: "#8B2635", IsActive: true, Level: 0, SortOrder: 1, ProductCount: 2, CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "cat_101", Name: "Dress Materials", Slug: "dress-materials", Icon: "🧵", Color: "#1F4E5F", IsActive: true, Level: 0, SortOrder: 2, ProductCount: 1, CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "cat_102", Name: "Dupattas", Slug: "dupattas", Icon: "🧣", Color: "#C97B3D", IsActive: true, Level: 0, SortOrder: 3, ProductCount: 1, CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "cat_103", Name: "Kurtis", Slug: "kurtis", Icon: "👚", Color: "#557A46", IsActive: true, Level: 0, SortOrder: 4, ProductCount: 1, CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "cat_104", Name: "Fabrics", Slug: "fabrics", Icon: "🪡", Color: "#54428E", IsActive: true, Level: 0, SortOrder: 5, ProductCount: 1, CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
	}
}

func MockThemes() []models.Theme {
	return []models.Theme{
		{
			ID:   "theme_100",
			Name: "Loom Classic", Slug: "loom-classic",
			Description: "Earthy default palette",
			Palette:     models.ThemePalette{Primary: "#8B2635", Secondary: "#C97B3D", Accent: "#E8B04B", Background: "#FBF7F0", Text: "#2B2118"},
			IsActive:    true, IsDefault: true,
			Settings:  map[string]bool{"showStories": true, "showBanners": true},
			CreatedAt: mockEpoch, UpdatedAt: mockEpoch,
		},
		{
			ID:   "theme_101",
			Name: "Indigo Nights", Slug: "indigo-nights",
			Description: "Dark festive palette",
			Palette:     models.ThemePalette{Primary: "#1F2A5C", Secondary: "#4B5CAB", Accent: "#E8B04B", Background: "#10142B", Text: "#F2F0EA"},
			IsActive:    true,
			Settings:    map[string]bool{"showStories": true, "showBanners": false},
			CreatedAt:   mockEpoch, UpdatedAt: mockEpoch,
		},
	}
}

func MockStories() []models.Story {
	return []models.Story{
		{ID: "story_100", Title: "Wedding Edit", Subtitle: "Pattu picks", Image: "/images/stories/wedding.jpg", Gradient: "sunset", IsActive: true, SortOrder: 1, LinkType: models.LinkTypeCategory, LinkValue: "sarees", CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "story_101", Title: "New Ikats", Image: "/images/stories/ikat.jpg", Gradient: "ocean", IsActive: true, SortOrder: 2, LinkType: models.LinkTypeCollection, LinkValue: "new-ikats", CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "story_102", Title: "Meet the Weavers", Image: "/images/stories/weavers.jpg", Gradient: "forest", IsActive: true, SortOrder: 3, LinkType: models.LinkTypeExternal, LinkValue: "https://blog.looom.shop/weavers", CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
	}
}

func MockBanners() []models.Banner {
	return []models.Banner{
		{ID: "banner_100", Title: "Festive Sale", Subtitle: "Up to 30% off pattu sarees", Description: "Handpicked festive weaves at loom-direct prices.", Image: "/images/banners/festive.jpg", Gradient: "sunset", BannerType: "hero", Height: "tall", Position: "top", ButtonText: "Shop Sale", ButtonColor: "#8B2635", ShowIcon: true, IsActive: true, SortOrder: 1, LinkType: models.LinkTypeCollection, LinkValue: "festive-sale", CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
		{ID: "banner_101", Title: "Free Shipping", Description: "On all orders above ₹2000.", Image: "/images/banners/shipping.jpg", Gradient: "ocean", BannerType: "strip", Height: "short", Position: "middle", ShowIcon: false, IsActive: true, SortOrder: 2, LinkType: models.LinkTypeNone, CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
	}
}
