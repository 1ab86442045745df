package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	adminCookieName = "looom-admin"

	// Session value keys, mirrored by the store's persisted auth state.
	AdminSessionKey       = "adminSession"
	AdminSessionExpiryKey = "adminSessionExpiry"

	// AdminSessionTTL is the fixed admin session window.
	AdminSessionTTL = 8 * time.Hour
)

// AdminSessionStore gates the admin panel. It is a convenience gate: the
// cookie carries a created/expiry timestamp pair and every check compares
// against the clock, nothing is validated server-side beyond the cookie
// signature.
type AdminSessionStore interface {
	IsAdmin(r *http.Request) bool
	SetAdminSession(w http.ResponseWriter, r *http.Request) error
	ClearAdminSession(w http.ResponseWriter, r *http.Request) error
}

type CookieAdminStore struct {
	store *sessions.CookieStore
	now   func() time.Time
}

func NewCookieAdminStore(keyPairs ...[]byte) *CookieAdminStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(AdminSessionTTL / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieAdminStore{store: store, now: time.Now}
}

func (c *CookieAdminStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, adminCookieName)
	if err != nil {
		log.Printf("AdminSessionStore: error getting session: %v", err)
	}
	return session
}

func (c *CookieAdminStore) IsAdmin(r *http.Request) bool {
	session := c.getSession(r)
	if session == nil {
		return false
	}
	createdAt, ok := session.Values[AdminSessionKey].(int64)
	if !ok || createdAt == 0 {
		return false
	}
	expiry, ok := session.Values[AdminSessionExpiryKey].(int64)
	if !ok {
		return false
	}
	return c.now().Unix() < expiry
}

func (c *CookieAdminStore) SetAdminSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	now := c.now()
	session.Values[AdminSessionKey] = now.Unix()
	session.Values[AdminSessionExpiryKey] = now.Add(AdminSessionTTL).Unix()
	return session.Save(r, w)
}

func (c *CookieAdminStore) ClearAdminSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
