package store

import (
	"encoding/json"
	"log"
	"os"

	"github.com/srikanth99-bot/looom-shop/app/models"
)

// PersistedState is the explicit allow-list of what survives a restart.
// Products and landing settings are deliberately absent: they are rebuilt
// from the backend (or the mock catalog) on every start. Adding a field
// here is the only way to make it persistent.
type PersistedState struct {
	Auth               models.AuthState             `json:"auth"`
	AdminSessionStart  int64                        `json:"adminSession,omitempty"`
	AdminSessionExpiry int64                        `json:"adminSessionExpiry,omitempty"`
	Carts              map[string][]models.CartItem `json:"carts"`
	Categories         []models.Category            `json:"categories"`
	Themes             []models.Theme               `json:"themes"`
	Stories            []models.Story               `json:"stories"`
	Banners            []models.Banner              `json:"banners"`
	Orders             []models.Order               `json:"orders"`
	Payments           []models.Payment             `json:"payments"`
	Notifications      []models.Notification        `json:"notifications"`
}

// save writes the persisted subset. Callers must hold s.mu. Persistence is
// synchronous on every mutation of a persisted field, matching the
// write-on-every-change behavior the store has always had.
func (s *Store) save() {
	blob := PersistedState{
		Auth:               s.state.Auth,
		AdminSessionStart:  s.state.AdminSessionStart,
		AdminSessionExpiry: s.state.AdminSessionExpiry,
		Carts:              s.state.Carts,
		Categories:         s.state.Categories,
		Themes:             s.state.Themes,
		Stories:            s.state.Stories,
		Banners:            s.state.Banners,
		Orders:             s.state.Orders,
		Payments:           s.state.Payments,
		Notifications:      s.state.Notifications,
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		log.Printf("store.save: marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(s.statePath, data, 0o644); err != nil {
		log.Printf("store.save: write %s failed: %v", s.statePath, err)
	}
}

// load restores the persisted subset. Missing or corrupt state files are
// not fatal: the store starts fresh.
func (s *Store) load() {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store.load: read %s failed: %v", s.statePath, err)
		}
		return
	}

	var blob PersistedState
	if err := json.Unmarshal(data, &blob); err != nil {
		log.Printf("store.load: corrupt state file %s, starting fresh: %v", s.statePath, err)
		return
	}

	s.state.Auth = blob.Auth
	s.state.AdminSessionStart = blob.AdminSessionStart
	s.state.AdminSessionExpiry = blob.AdminSessionExpiry
	s.state.Carts = blob.Carts
	s.state.Categories = blob.Categories
	s.state.Themes = blob.Themes
	s.state.Stories = blob.Stories
	s.state.Banners = blob.Banners
	s.state.Orders = blob.Orders
	s.state.Payments = blob.Payments
	s.state.Notifications = blob.Notifications
}
