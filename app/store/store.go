package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/repositories"
	"github.com/srikanth99-bot/looom-shop/app/services"
)

// DefaultStatePath is the fixed name of the persisted-state blob.
const DefaultStatePath = "looom-store.json"

// Repos are the back-office write-through targets. Any of them may be nil;
// the store then keeps that entity in memory (and in the persisted blob)
// only.
type Repos struct {
	Categories repositories.CategoryRepositoryImpl
	Themes     repositories.ThemeRepositoryImpl
	Stories    repositories.StoryRepositoryImpl
	Banners    repositories.BannerRepositoryImpl
	Orders     repositories.OrderRepositoryImpl
}

// state is the full state tree. Which fields survive a restart is decided
// solely by the allow-list in persist.go, not here.
type state struct {
	Auth               models.AuthState
	AdminSessionStart  int64
	AdminSessionExpiry int64

	Carts map[string][]models.CartItem

	Products   []models.Product
	Categories []models.Category
	Themes     []models.Theme
	Stories    []models.Story
	Banners    []models.Banner

	Orders        []models.Order
	Payments      []models.Payment
	Notifications []models.Notification

	Landing models.LandingSettings

	// Session-only UI toggles.
	CartOpen bool
	MenuOpen bool
}

// Store is the single source of truth for session, cart, catalog, orders
// and notifications. Every mutation happens under one lock through an
// action method; mutations that touch a persisted field save the blob
// before returning.
type Store struct {
	mu sync.Mutex

	products *services.ProductService
	landing  *services.LandingService
	repos    Repos

	now           func() time.Time
	statePath     string
	allowAnyMove  bool
	adminEmail    string
	adminPassHash string

	state         state
	isInitialized bool
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithStatePath(path string) Option {
	return func(s *Store) { s.statePath = path }
}

// WithAllowAnyTransition restores the legacy behavior of accepting any order
// status move. Default is the guarded transition table.
func WithAllowAnyTransition(allow bool) Option {
	return func(s *Store) { s.allowAnyMove = allow }
}

// WithAdminCredentials switches the admin gate from the demo pair to a
// bcrypt-hashed credential.
func WithAdminCredentials(email, passHash string) Option {
	return func(s *Store) {
		s.adminEmail = email
		s.adminPassHash = passHash
	}
}

func WithRepos(repos Repos) Option {
	return func(s *Store) { s.repos = repos }
}

func New(products *services.ProductService, landing *services.LandingService, opts ...Option) *Store {
	s := &Store{
		products:  products,
		landing:   landing,
		now:       time.Now,
		statePath: DefaultStatePath,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// InitializeApp bootstraps the store: catalog and landing settings are
// loaded, demo entities are seeded when nothing was persisted. Idempotent;
// a failing stage logs and initialization still completes so callers never
// retry-loop.
func (s *Store) InitializeApp(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized {
		return
	}

	result := s.products.GetProducts(ctx)
	s.state.Products = result.Products
	log.Printf("InitializeApp: loaded %d products (source=%s)", len(result.Products), result.Source)

	landingResult := s.landing.GetSettings(ctx)
	s.state.Landing = landingResult.Settings

	if len(s.state.Categories) == 0 {
		s.state.Categories = services.MockCategories()
	}
	if len(s.state.Themes) == 0 {
		s.state.Themes = services.MockThemes()
	}
	if len(s.state.Stories) == 0 {
		s.state.Stories = services.MockStories()
	}
	if len(s.state.Banners) == 0 {
		s.state.Banners = services.MockBanners()
	}

	s.isInitialized = true
	s.save()
}

// IsInitialized reports whether InitializeApp has completed once.
func (s *Store) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isInitialized
}

// Products returns the current catalog snapshot.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.state.Products))
	copy(out, s.state.Products)
	return out
}

// SetProducts replaces the catalog snapshot; wired as the product change
// feed callback.
func (s *Store) SetProducts(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = products
	s.refreshCategoryCountsLocked()
}

// LandingSettings returns the current landing configuration.
func (s *Store) LandingSettings() models.LandingSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Landing
}

// SetLandingSettings stores the landing configuration after a successful
// service save.
func (s *Store) SetLandingSettings(settings models.LandingSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Landing = settings
}

// SetCartOpen toggles the cart drawer.
func (s *Store) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CartOpen = open
}

// SetMenuOpen toggles the nav menu.
func (s *Store) SetMenuOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MenuOpen = open
}
