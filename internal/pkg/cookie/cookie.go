package cookie

import (
	"net/http"
	"time"

	"nagoyameshi/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName carries the bearer token for clients that cannot set headers.
const AccessTokenCookieName = "access_token"

var sameSiteModes = map[string]http.SameSite{
	"Strict": http.SameSiteStrictMode,
	"Lax":    http.SameSiteLaxMode,
	"None":   http.SameSiteNoneMode,
}

// SameSite maps a configured mode name; unknown names fall back to Lax.
func SameSite(name string) http.SameSite {
	if m, ok := sameSiteModes[name]; ok {
		return m
	}
	return http.SameSiteLaxMode
}

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	write(c, cfg, token, int(ttl.Seconds()))
}

// ClearAccessToken expires the cookie so a logged-out browser stops presenting the token.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetSameSite(SameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}
