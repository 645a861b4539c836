// Package session provides visitor sessions backed by the application database.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

// NewManager creates an SCS session manager backed by db. The driver selects
// the store: "mysql", "postgres", or "sqlite3" (default).
func NewManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.Name = "site_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secure
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// Storage keeps key/value records in the visitor's session. It stands in for
// browser localStorage when the visitor has no script running.
type Storage struct {
	ctx      context.Context
	sessions *scs.SessionManager
}

// NewStorage returns a Storage bound to the session loaded into ctx by
// SessionManager.LoadAndSave. It is only valid for the lifetime of that request.
func NewStorage(ctx context.Context, sm *scs.SessionManager) *Storage {
	return &Storage{ctx: ctx, sessions: sm}
}

func (s *Storage) GetItem(key string) (string, bool) {
	if !s.sessions.Exists(s.ctx, key) {
		return "", false
	}
	return s.sessions.GetString(s.ctx, key), true
}

func (s *Storage) SetItem(key, value string) error {
	s.sessions.Put(s.ctx, key, value)
	return nil
}
