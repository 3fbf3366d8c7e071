package session

import (
	"net/http"

	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/cookie"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

// Keys stored in the session. Member and admin ids never share a key.
const (
	KeyMemberID = "member_id"
	KeyAdminID  = "admin_id"
	KeyFlash    = "flash"
)

// NewManager keeps sessions in Redis when a client is given and in memory otherwise.
func NewManager(cfg config.Config, client *redis.Client) *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = cfg.Session.Lifetime
	sm.Cookie.Name = cfg.Session.CookieName
	sm.Cookie.Domain = cfg.Cookie.Domain
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.Cookie.Secure
	sm.Cookie.SameSite = cookie.SameSite(cfg.Cookie.SameSite)
	sm.Cookie.Persist = true

	if client != nil {
		sm.Store = NewRedisStore(client, cfg.Redis.Prefix)
	} else {
		sm.Store = memstore.New()
	}
	sm.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	return sm
}
