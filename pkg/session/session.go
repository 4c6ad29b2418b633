// Package session manages the signed cookie that remembers the status
// form's last-used defaults between visits.
package session

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

// Store is the global session store for dashboard form defaults.
var Store *sessions.CookieStore

// SessionName is the name of the statusboard session cookie.
const SessionName = "statusboard-session"

// Session value keys.
const (
	KeyDefaultEmployee = "default_employee"
	KeyDefaultStatus   = "default_status"
)

// InitStore initializes the cookie-based session store.
//
// The secret parameter is used to sign session cookies. It can be any
// passphrase - it will be SHA-256 hashed to derive a 32-byte key. The
// secret must be consistent across server restarts.
//
// The cookie holds form defaults, not credentials, so it is long-lived
// and not marked Secure (the dashboard commonly runs over plain HTTP on
// an internal network).
func InitStore(secret string) {
	// Hash the secret to get a consistent 32-byte key
	key := sha256.Sum256([]byte(secret))

	Store = sessions.NewCookieStore(key[:])
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Get retrieves the statusboard session from the request.
// Creates a new session if one doesn't exist.
func Get(r *http.Request) (*sessions.Session, error) {
	return Store.Get(r, SessionName)
}

// Save saves the session to the response.
func Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	return session.Save(r, w)
}
