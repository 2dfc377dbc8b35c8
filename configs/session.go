package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession cookie tabanlı session store'unu kurar.
// Misafir kimliği (identity UUID) ve bekleyen davet kodu bu session'da yaşar.
func SetupSession(cfg *Config) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.SessionCookieName,
		Expiration:     30 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SessionSecure,
		CookieSameSite: "Lax",
	})
}
