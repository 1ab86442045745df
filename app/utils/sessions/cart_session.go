package sessions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/srikanth99-bot/looom-shop/app/configs"
)

const (
	SessionCartKey   = "cart_session"
	CartSessionIDKey = "cart_id"
)

var Store = newCartCookieStore()

func newCartCookieStore() *sessions.CookieStore {
	key := []byte(configs.LoadENV.SESSION_KEY)
	if len(key) == 0 {
		// Demo mode without SESSION_KEY: ephemeral key, cart cookies reset
		// on process restart.
		key = securecookie.GenerateRandomKey(64)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	}
	return store
}

// GetCartID returns the caller's cart session id, minting one on first use.
// A cookie that no longer decodes (e.g. after a key rotation) is treated as
// a fresh session, not an error.
func GetCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := Store.Get(r, SessionCartKey)
	if err != nil && session == nil {
		return "", err
	}

	if cartID, ok := session.Values[CartSessionIDKey].(string); ok && cartID != "" {
		return cartID, nil
	}

	newCartID := uuid.New().String()
	session.Values[CartSessionIDKey] = newCartID
	if err := session.Save(r, w); err != nil {
		return "", err
	}

	return newCartID, nil
}
