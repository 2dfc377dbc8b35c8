package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"gemma.link/configs"
	"gemma.link/middlewares"
	"gemma.link/pkg/renderer"
	"gemma.link/services"
)

// Dependencies route kaydının ihtiyaç duyduğu her şeyi taşır.
// Servisler dışarıda kurulup buraya verilir; route katmanı hiçbir
// bağımlılığı kendisi oluşturmaz.
type Dependencies struct {
	Config          *configs.Config
	DB              *gorm.DB
	SessionStore    *session.Store
	IdentityService services.IIdentityService
	InviteService   services.IInviteService
	ProfileService  services.IProfileService
	RSVPService     services.IRSVPService
	AuthService     services.IAuthService
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(sessionBootstrap(deps.SessionStore))
	app.Use(middlewares.AccessContext(deps.IdentityService, deps.ProfileService))
	app.Use(middlewares.RedeemPendingInvite(deps.InviteService))

	registerAuthRoutes(app, deps)
	registerGuestRoutes(app, deps)
	registerAdminRoutes(app, deps)

	app.Use(notFoundHandler)
}

// SetupDiagnosticRoutes yalnızca tanılama ekranı servis eden kısıtlı modu
// kurar. Zorunlu ayar eksikse yapılandırma ekranı, veritabanına
// ulaşılamıyorsa bağlantı ekranı gösterilir; sayfa yenilemesi yeniden dener.
func SetupDiagnosticRoutes(app *fiber.App, reason error) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	var configErr *configs.ConfigError
	if errors.As(reason, &configErr) {
		app.Use(func(c *fiber.Ctx) error {
			return renderer.Render(c, "errors/config", "layouts/error_layout", fiber.Map{
				"Title":       "Yapılandırma Eksik",
				"MissingVars": configErr.MissingVars,
			}, fiber.StatusServiceUnavailable)
		})
		return
	}

	app.Use(func(c *fiber.Ctx) error {
		return renderer.Render(c, "errors/connectivity", "layouts/error_layout", fiber.Map{
			"Title":  "Veritabanına Ulaşılamıyor",
			"Detail": reason.Error(),
		}, fiber.StatusServiceUnavailable)
	})
}

// sessionBootstrap store'u locals'a koyar; session açma işi utils.SessionStart'ta.
func sessionBootstrap(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	if accepts == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	}
	return renderer.Render(c, "errors/404", "layouts/error_layout", fiber.Map{
		"Title": "Sayfa Bulunamadı",
	}, fiber.StatusNotFound)
}
