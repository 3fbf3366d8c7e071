//go:build unit

package session

import (
	"net/http"
	"testing"
	"time"

	"nagoyameshi/internal/pkg/config"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
)

func TestNewManager(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Cookie.Secure = true
	cfg.Cookie.SameSite = "Strict"

	sm := NewManager(cfg, nil)

	assert.Equal(t, time.Hour, sm.Lifetime)
	assert.Equal(t, "nagoyameshi_session", sm.Cookie.Name)
	assert.True(t, sm.Cookie.HttpOnly)
	assert.True(t, sm.Cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, sm.Cookie.SameSite)
	assert.IsType(t, &memstore.MemStore{}, sm.Store)
}

func TestRedisStore_Key(t *testing.T) {
	s := NewRedisStore(nil, "nagoyameshi:session:")
	assert.Equal(t, "nagoyameshi:session:abc", s.key("abc"))
}
