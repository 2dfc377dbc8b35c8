package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/pkg/accessgate"
	"gemma.link/pkg/renderer"
)

// renderWait çözümlenemeyen kimlik için nötr bekleme ekranı gösterir.
// Asla yönlendirme yapılmaz; durum geçiciyse sayfa yenilemesi yeterlidir.
func renderWait(c *fiber.Ctx) error {
	return renderer.Render(c, "errors/wait", "layouts/error_layout", fiber.Map{
		"Title": "Bir dakika...",
	}, fiber.StatusServiceUnavailable)
}

// RequireAccess tam misafir erişimi ister.
// UNRESOLVED -> bekleme ekranı, UNAUTHENTICATED -> /login,
// INCOMPLETE -> /profile-setup, COMPLETE -> devam.
func RequireAccess(c *fiber.Ctx) error {
	switch CurrentAccessState(c) {
	case accessgate.StateUnresolved:
		return renderWait(c)
	case accessgate.StateUnauthenticated:
		return c.Redirect("/login", fiber.StatusSeeOther)
	case accessgate.StateIncomplete:
		return c.Redirect("/profile-setup", fiber.StatusSeeOther)
	default:
		return c.Next()
	}
}

// RequireIdentity profil kurulumu gibi, kimlik isteyen ama tam profil
// istemeyen sayfalar içindir.
func RequireIdentity(c *fiber.Ctx) error {
	switch CurrentAccessState(c) {
	case accessgate.StateUnresolved:
		return renderWait(c)
	case accessgate.StateUnauthenticated:
		return c.Redirect("/login", fiber.StatusSeeOther)
	default:
		return c.Next()
	}
}

// GuestMiddleware kapıdan geçmiş misafiri davet kodu ekranından uzak tutar.
func GuestMiddleware(c *fiber.Ctx) error {
	switch CurrentAccessState(c) {
	case accessgate.StateIncomplete:
		return c.Redirect("/profile-setup", fiber.StatusSeeOther)
	case accessgate.StateComplete:
		return c.Redirect("/", fiber.StatusSeeOther)
	default:
		return c.Next()
	}
}

// AdminMiddleware admin rotalarını korur. Yetkisiz misafir hata sayfası değil
// ana sayfa görür.
func AdminMiddleware(c *fiber.Ctx) error {
	state := CurrentAccessState(c)
	if state == accessgate.StateUnresolved {
		return renderWait(c)
	}
	if !accessgate.AllowAdmin(state, CurrentProfile(c)) {
		configslog.Log.Warn("Admin rotasına yetkisiz erişim denemesi",
			zap.String("identityID", CurrentIdentityID(c)), zap.String("path", c.Path()))
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}
