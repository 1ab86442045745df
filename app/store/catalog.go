package store

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/srikanth99-bot/looom-shop/app/helpers"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// Product writes go through the product service so the live/fallback write
// policy applies; on success the catalog snapshot is refreshed in place.

func (s *Store) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = helpers.NewID("prod")
	}

	created, err := s.products.Create(ctx, p)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	s.state.Products = append(s.state.Products, created)
	s.refreshCategoryCountsLocked()
	s.mu.Unlock()

	s.refreshCategoryCountBackend(created.Category)
	return created, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	for i := range s.state.Products {
		if s.state.Products[i].ID == updated.ID {
			s.state.Products[i] = updated
			break
		}
	}
	s.refreshCategoryCountsLocked()
	s.mu.Unlock()

	s.refreshCategoryCountBackend(updated.Category)
	return updated, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	category := ""
	filtered := s.state.Products[:0]
	for _, p := range s.state.Products {
		if p.ID != id {
			filtered = append(filtered, p)
		} else {
			category = p.Category
		}
	}
	s.state.Products = filtered
	s.refreshCategoryCountsLocked()
	s.mu.Unlock()

	s.refreshCategoryCountBackend(category)
	return nil
}

// refreshCategoryCountsLocked recomputes every category's denormalized
// product count from the in-memory catalog. Categories match products by
// name, case-insensitively.
func (s *Store) refreshCategoryCountsLocked() {
	counts := make(map[string]int, len(s.state.Categories))
	for _, p := range s.state.Products {
		counts[strings.ToLower(p.Category)]++
	}
	for i := range s.state.Categories {
		s.state.Categories[i].ProductCount = counts[strings.ToLower(s.state.Categories[i].Name)]
	}
}

// refreshCategoryCountBackend mirrors the recount to the backend row for the
// named category, best-effort.
func (s *Store) refreshCategoryCountBackend(categoryName string) {
	if s.repos.Categories == nil || categoryName == "" {
		return
	}

	var id string
	s.mu.Lock()
	for _, c := range s.state.Categories {
		if strings.EqualFold(c.Name, categoryName) {
			id = c.ID
			break
		}
	}
	s.mu.Unlock()
	if id == "" {
		return
	}

	go func() {
		if err := s.repos.Categories.RefreshProductCount(context.Background(), id); err != nil {
			log.Printf("refreshCategoryCountBackend: recount for %s failed: %v", id, err)
		}
	}()
}

// Category/theme/story/banner actions follow the admin-form contract:
// synthesize a prefixed id on create, stamp UpdatedAt, replace in place by
// id on update, filter out by id on delete. Backend write-through is
// best-effort; the store state and persisted blob are authoritative for
// these entities.

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.state.Categories))
	copy(out, s.state.Categories)
	return out
}

func (s *Store) CreateCategory(category models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	category.ID = helpers.NewID("cat")
	if category.Slug == "" {
		category.Slug = helpers.GenerateSlug(category.Name)
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	s.state.Categories = append(s.state.Categories, category)
	s.save()

	if s.repos.Categories != nil {
		row := categoryToRow(category)
		go func() {
			if err := s.repos.Categories.Create(context.Background(), &row); err != nil {
				log.Printf("CreateCategory: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return category
}

func (s *Store) UpdateCategory(category models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Categories {
		if s.state.Categories[i].ID == category.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("category %s not found", category.ID)
	}

	if category.Slug == "" {
		category.Slug = helpers.GenerateSlug(category.Name)
	}
	category.CreatedAt = s.state.Categories[idx].CreatedAt
	category.UpdatedAt = s.now()
	s.state.Categories[idx] = category
	s.save()

	if s.repos.Categories != nil {
		row := categoryToRow(category)
		go func() {
			if err := s.repos.Categories.Update(context.Background(), &row); err != nil {
				log.Printf("UpdateCategory: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return nil
}

// DeleteCategory removes the category and any of its subcategories.
func (s *Store) DeleteCategory(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.state.Categories[:0]
	for _, c := range s.state.Categories {
		if c.ID == id || (c.ParentID != nil && *c.ParentID == id) {
			continue
		}
		filtered = append(filtered, c)
	}
	s.state.Categories = filtered
	s.save()

	if s.repos.Categories != nil {
		go func() {
			ctx := context.Background()
			children, err := s.repos.Categories.GetChildren(ctx, id)
			if err != nil {
				log.Printf("DeleteCategory: child lookup for %s failed: %v", id, err)
			}
			for _, child := range children {
				if err := s.repos.Categories.Delete(ctx, child.ID); err != nil {
					log.Printf("DeleteCategory: backend delete for %s failed: %v", child.ID, err)
				}
			}
			if err := s.repos.Categories.Delete(ctx, id); err != nil {
				log.Printf("DeleteCategory: backend delete for %s failed: %v", id, err)
			}
		}()
	}
}

func (s *Store) Themes() []models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Theme, len(s.state.Themes))
	copy(out, s.state.Themes)
	return out
}

func (s *Store) CreateTheme(theme models.Theme) models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	theme.ID = helpers.NewID("theme")
	if theme.Slug == "" {
		theme.Slug = helpers.GenerateSlug(theme.Name)
	}
	theme.CreatedAt = now
	theme.UpdatedAt = now

	s.state.Themes = append(s.state.Themes, theme)
	if theme.IsDefault {
		s.clearOtherDefaultThemesLocked(theme.ID)
	}
	s.save()

	if s.repos.Themes != nil {
		row := themeToRow(theme)
		go func() {
			if err := s.repos.Themes.Create(context.Background(), &row); err != nil {
				log.Printf("CreateTheme: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return theme
}

func (s *Store) UpdateTheme(theme models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Themes {
		if s.state.Themes[i].ID == theme.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("theme %s not found", theme.ID)
	}

	theme.CreatedAt = s.state.Themes[idx].CreatedAt
	theme.UpdatedAt = s.now()
	s.state.Themes[idx] = theme
	if theme.IsDefault {
		s.clearOtherDefaultThemesLocked(theme.ID)
	}
	s.save()

	if s.repos.Themes != nil {
		row := themeToRow(theme)
		go func() {
			if err := s.repos.Themes.Update(context.Background(), &row); err != nil {
				log.Printf("UpdateTheme: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return nil
}

func (s *Store) DeleteTheme(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.state.Themes[:0]
	for _, t := range s.state.Themes {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.state.Themes = filtered
	s.save()

	if s.repos.Themes != nil {
		go func() {
			if err := s.repos.Themes.Delete(context.Background(), id); err != nil {
				log.Printf("DeleteTheme: backend delete for %s failed: %v", id, err)
			}
		}()
	}
}

// SetDefaultTheme marks one theme default and clears the flag everywhere
// else.
func (s *Store) SetDefaultTheme(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.state.Themes {
		if s.state.Themes[i].ID == id {
			s.state.Themes[i].IsDefault = true
			s.state.Themes[i].UpdatedAt = s.now()
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("theme %s not found", id)
	}
	s.clearOtherDefaultThemesLocked(id)
	s.save()

	if s.repos.Themes != nil {
		go func() {
			if err := s.repos.Themes.SetDefault(context.Background(), id); err != nil {
				log.Printf("SetDefaultTheme: backend persist for %s failed: %v", id, err)
			}
		}()
	}
	return nil
}

func (s *Store) clearOtherDefaultThemesLocked(keepID string) {
	for i := range s.state.Themes {
		if s.state.Themes[i].ID != keepID {
			s.state.Themes[i].IsDefault = false
		}
	}
}

func (s *Store) Stories() []models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Story, len(s.state.Stories))
	copy(out, s.state.Stories)
	return out
}

func (s *Store) CreateStory(story models.Story) models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	story.ID = helpers.NewID("story")
	if story.LinkType == "" {
		story.LinkType = models.LinkTypeNone
	}
	story.SortOrder = len(s.state.Stories) + 1
	story.CreatedAt = now
	story.UpdatedAt = now

	s.state.Stories = append(s.state.Stories, story)
	s.save()

	if s.repos.Stories != nil {
		row := storyToRow(story)
		go func() {
			if err := s.repos.Stories.Create(context.Background(), &row); err != nil {
				log.Printf("CreateStory: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return story
}

func (s *Store) UpdateStory(story models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Stories {
		if s.state.Stories[i].ID == story.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("story %s not found", story.ID)
	}

	story.SortOrder = s.state.Stories[idx].SortOrder
	story.CreatedAt = s.state.Stories[idx].CreatedAt
	story.UpdatedAt = s.now()
	s.state.Stories[idx] = story
	s.save()

	if s.repos.Stories != nil {
		row := storyToRow(story)
		go func() {
			if err := s.repos.Stories.Update(context.Background(), &row); err != nil {
				log.Printf("UpdateStory: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return nil
}

func (s *Store) DeleteStory(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.state.Stories[:0]
	for _, st := range s.state.Stories {
		if st.ID != id {
			filtered = append(filtered, st)
		}
	}
	s.state.Stories = filtered
	s.renumberStoriesLocked()
	s.save()

	if s.repos.Stories != nil {
		go func() {
			if err := s.repos.Stories.Delete(context.Background(), id); err != nil {
				log.Printf("DeleteStory: backend delete for %s failed: %v", id, err)
			}
		}()
	}
}

// ReorderStories takes the full list of story ids in their new order and
// rewrites every SortOrder to its 1-based position. Unknown ids are
// rejected; ids missing from the list keep their relative order at the end.
func (s *Store) ReorderStories(orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.state.Stories))
	for i, st := range s.state.Stories {
		byID[st.ID] = i
	}

	reordered := make([]models.Story, 0, len(s.state.Stories))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		idx, ok := byID[id]
		if !ok {
			return fmt.Errorf("story %s not found", id)
		}
		if seen[id] {
			return fmt.Errorf("story %s listed twice", id)
		}
		seen[id] = true
		reordered = append(reordered, s.state.Stories[idx])
	}
	for _, st := range s.state.Stories {
		if !seen[st.ID] {
			reordered = append(reordered, st)
		}
	}

	s.state.Stories = reordered
	s.renumberStoriesLocked()
	s.save()

	if s.repos.Stories != nil {
		ids := make([]string, len(s.state.Stories))
		for i, st := range s.state.Stories {
			ids[i] = st.ID
		}
		go func() {
			if err := s.repos.Stories.UpdateSortOrders(context.Background(), ids); err != nil {
				log.Printf("ReorderStories: backend persist failed: %v", err)
			}
		}()
	}
	return nil
}

func (s *Store) renumberStoriesLocked() {
	for i := range s.state.Stories {
		s.state.Stories[i].SortOrder = i + 1
	}
}

func (s *Store) Banners() []models.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Banner, len(s.state.Banners))
	copy(out, s.state.Banners)
	return out
}

func (s *Store) CreateBanner(banner models.Banner) models.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	banner.ID = helpers.NewID("banner")
	if banner.LinkType == "" {
		banner.LinkType = models.LinkTypeNone
	}
	banner.SortOrder = len(s.state.Banners) + 1
	banner.CreatedAt = now
	banner.UpdatedAt = now

	s.state.Banners = append(s.state.Banners, banner)
	s.save()

	if s.repos.Banners != nil {
		row := bannerToRow(banner)
		go func() {
			if err := s.repos.Banners.Create(context.Background(), &row); err != nil {
				log.Printf("CreateBanner: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return banner
}

func (s *Store) UpdateBanner(banner models.Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Banners {
		if s.state.Banners[i].ID == banner.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("banner %s not found", banner.ID)
	}

	banner.SortOrder = s.state.Banners[idx].SortOrder
	banner.CreatedAt = s.state.Banners[idx].CreatedAt
	banner.UpdatedAt = s.now()
	s.state.Banners[idx] = banner
	s.save()

	if s.repos.Banners != nil {
		row := bannerToRow(banner)
		go func() {
			if err := s.repos.Banners.Update(context.Background(), &row); err != nil {
				log.Printf("UpdateBanner: backend persist for %s failed: %v", row.ID, err)
			}
		}()
	}
	return nil
}

func (s *Store) DeleteBanner(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.state.Banners[:0]
	for _, b := range s.state.Banners {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	s.state.Banners = filtered
	s.renumberBannersLocked()
	s.save()

	if s.repos.Banners != nil {
		go func() {
			if err := s.repos.Banners.Delete(context.Background(), id); err != nil {
				log.Printf("DeleteBanner: backend delete for %s failed: %v", id, err)
			}
		}()
	}
}

func (s *Store) ReorderBanners(orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.state.Banners))
	for i, b := range s.state.Banners {
		byID[b.ID] = i
	}

	reordered := make([]models.Banner, 0, len(s.state.Banners))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		idx, ok := byID[id]
		if !ok {
			return fmt.Errorf("banner %s not found", id)
		}
		if seen[id] {
			return fmt.Errorf("banner %s listed twice", id)
		}
		seen[id] = true
		reordered = append(reordered, s.state.Banners[idx])
	}
	for _, b := range s.state.Banners {
		if !seen[b.ID] {
			reordered = append(reordered, b)
		}
	}

	s.state.Banners = reordered
	s.renumberBannersLocked()
	s.save()

	if s.repos.Banners != nil {
		ids := make([]string, len(s.state.Banners))
		for i, b := range s.state.Banners {
			ids[i] = b.ID
		}
		go func() {
			if err := s.repos.Banners.UpdateSortOrders(context.Background(), ids); err != nil {
				log.Printf("ReorderBanners: backend persist failed: %v", err)
			}
		}()
	}
	return nil
}

func (s *Store) renumberBannersLocked() {
	for i := range s.state.Banners {
		s.state.Banners[i].SortOrder = i + 1
	}
}
