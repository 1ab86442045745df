package store

import (
	"encoding/json"
	"log"

	"github.com/srikanth99-bot/looom-shop/app/models"
)

// Row transforms for the back-office write-through path.

func categoryToRow(c models.Category) models.CategoryRow {
	return models.CategoryRow{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		AutoDescription: c.AutoDescription,
		Image:           c.Image,
		Icon:            c.Icon,
		Color:           c.Color,
		IsActive:        c.IsActive,
		Level:           c.Level,
		ParentID:        c.ParentID,
		SortOrder:       c.SortOrder,
		ProductCount:    c.ProductCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func themeToRow(t models.Theme) models.ThemeRow {
	settings := "{}"
	if len(t.Settings) > 0 {
		b, err := json.Marshal(t.Settings)
		if err != nil {
			log.Printf("themeToRow: settings marshal for %s failed: %v", t.ID, err)
		} else {
			settings = string(b)
		}
	}

	return models.ThemeRow{
		ID:              t.ID,
		Name:            t.Name,
		Slug:            t.Slug,
		Description:     t.Description,
		PrimaryColor:    t.Palette.Primary,
		SecondaryColor:  t.Palette.Secondary,
		AccentColor:     t.Palette.Accent,
		BackgroundColor: t.Palette.Background,
		TextColor:       t.Palette.Text,
		IsActive:        t.IsActive,
		IsDefault:       t.IsDefault,
		Settings:        settings,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func storyToRow(st models.Story) models.StoryRow {
	return models.StoryRow{
		ID:        st.ID,
		Title:     st.Title,
		Subtitle:  st.Subtitle,
		Image:     st.Image,
		Gradient:  st.Gradient,
		IsActive:  st.IsActive,
		SortOrder: st.SortOrder,
		LinkType:  st.LinkType,
		LinkValue: st.LinkValue,
		StartDate: st.StartDate,
		EndDate:   st.EndDate,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}

func bannerToRow(b models.Banner) models.BannerRow {
	return models.BannerRow{
		ID:          b.ID,
		Title:       b.Title,
		Subtitle:    b.Subtitle,
		Description: b.Description,
		Image:       b.Image,
		Gradient:    b.Gradient,
		BannerType:  b.BannerType,
		Height:      b.Height,
		Position:    b.Position,
		ButtonText:  b.ButtonText,
		ButtonColor: b.ButtonColor,
		ShowIcon:    b.ShowIcon,
		IsActive:    b.IsActive,
		SortOrder:   b.SortOrder,
		LinkType:    b.LinkType,
		LinkValue:   b.LinkValue,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
