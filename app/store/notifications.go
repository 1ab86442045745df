package store

import (
	"github.com/srikanth99-bot/looom-shop/app/helpers"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// AddNotification appends an unread notification.
func (s *Store) AddNotification(message string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.addNotificationLocked(message)
	s.save()
	return n
}

func (s *Store) addNotificationLocked(message string) models.Notification {
	n := models.Notification{
		ID:        helpers.NewID("notif"),
		Message:   message,
		Read:      false,
		CreatedAt: s.now(),
	}
	s.state.Notifications = append(s.state.Notifications, n)
	return n
}

// MarkNotificationRead flips one notification to read.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			break
		}
	}
	s.save()
}

// MarkAllNotificationsRead flips everything to read.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Notifications {
		s.state.Notifications[i].Read = true
	}
	s.save()
}

// Notifications returns a snapshot of all notifications.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.state.Notifications))
	copy(out, s.state.Notifications)
	return out
}

// UnreadNotificationCount is a pure derived count, valid for any list
// including the empty one.
func (s *Store) UnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.state.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
