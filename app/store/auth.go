package store

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/srikanth99-bot/looom-shop/app/helpers"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// Demo credential pair used when no ADMIN_PASSWORD_HASH is configured. A
// convenience gate for demo mode, not a security boundary.
const (
	DemoAdminEmail    = "admin@looom.shop"
	DemoAdminPassword = "admin123"
)

// AdminSessionTTL is the fixed admin session window.
const AdminSessionTTL = 8 * time.Hour

// AdminLogin normalizes the credentials (email is trimmed and lowercased,
// password trimmed) and on success opens an 8-hour admin session. With
// configured credentials the password is checked against the bcrypt hash;
// otherwise the fixed demo pair applies.
func (s *Store) AdminLogin(email, password string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	ok := false
	if s.adminPassHash != "" {
		ok = email == strings.ToLower(strings.TrimSpace(s.adminEmail)) &&
			helpers.PasswordCompare(s.adminPassHash, []byte(password))
	} else {
		ok = email == DemoAdminEmail && password == DemoAdminPassword
	}
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.state.Auth = models.AuthState{
		IsAuthenticated: true,
		User:            &models.User{ID: "admin", Name: "Store Admin", Email: email},
	}
	s.state.AdminSessionStart = now.Unix()
	s.state.AdminSessionExpiry = now.Add(AdminSessionTTL).Unix()
	s.save()
	return true
}

// AdminLogout clears the auth state and the session timestamp pair.
func (s *Store) AdminLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked()
	s.save()
}

func (s *Store) logoutLocked() {
	s.state.Auth = models.AuthState{}
	s.state.AdminSessionStart = 0
	s.state.AdminSessionExpiry = 0
}

// CheckAdminSession reports whether the admin session is still live, forcing
// a logout the moment the expiry has passed.
func (s *Store) CheckAdminSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Auth.IsAuthenticated {
		return false
	}
	if s.now().Unix() >= s.state.AdminSessionExpiry {
		s.logoutLocked()
		s.save()
		return false
	}
	return true
}

// IsAuthenticated exposes the current auth flag without the expiry check.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Auth.IsAuthenticated
}

// StartSessionWatcher checks the session once per minute until ctx is done.
func (s *Store) StartSessionWatcher(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if s.IsAuthenticated() && !s.CheckAdminSession() {
					log.Println("SessionWatcher: admin session expired, forced logout")
				}
			}
		}
	}()
}
