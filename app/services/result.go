package services

import "github.com/srikanth99-bot/looom-shop/app/models"

// Source tags every read result with the path that produced it, so callers
// and tests can assert live-vs-fallback instead of inferring it from logs.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

type ProductsResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Source   Source           `json:"source"`
}

type ProductResult struct {
	Product *models.Product `json:"product"`
	Source  Source          `json:"source"`
}

type LandingResult struct {
	Settings models.LandingSettings `json:"settings"`
	Source   Source                 `json:"source"`
}
