// Package session configures the server-side session manager backing
// admin logins.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// New returns a session manager persisting sessions in the given SQLite
// database. In production the cookie uses the __Host- prefix, which
// requires Secure, Path=/ and no Domain attribute.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode

	if !isDev {
		sm.Cookie.Name = "__Host-session"
		sm.Cookie.Path = "/"
		sm.Cookie.Secure = true
	}

	return sm
}
