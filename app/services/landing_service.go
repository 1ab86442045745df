package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/repositories"
	"gorm.io/gorm"
)

// LandingService reads and writes the singleton landing page configuration
// row, following the same degradation policy as ProductService.
type LandingService struct {
	repo       repositories.LandingSettingsRepositoryImpl
	configured bool
}

func NewLandingService(repo repositories.LandingSettingsRepositoryImpl) *LandingService {
	return &LandingService{repo: repo, configured: repo != nil}
}

func (s *LandingService) GetSettings(ctx context.Context) LandingResult {
	if !s.configured {
		return LandingResult{Settings: MockLandingSettings(), Source: SourceFallback}
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Config row was never written; defaults are not an error.
			return LandingResult{Settings: MockLandingSettings(), Source: SourceFallback}
		}
		log.Printf("LandingService.GetSettings: backend error, serving defaults: %v", err)
		return LandingResult{Settings: MockLandingSettings(), Source: SourceFallback}
	}
	return LandingResult{Settings: rowToLandingSettings(*row), Source: SourceLive}
}

func (s *LandingService) SaveSettings(ctx context.Context, settings models.LandingSettings) (models.LandingSettings, error) {
	settings.ID = models.LandingSettingsID
	settings.UpdatedAt = time.Now()

	if !s.configured {
		return settings, nil
	}

	row := landingSettingsToRow(settings)
	if err := s.repo.Upsert(ctx, &row); err != nil {
		return models.LandingSettings{}, fmt.Errorf("failed to save landing settings: %w", err)
	}
	return rowToLandingSettings(row), nil
}
