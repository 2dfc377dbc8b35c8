package routes

import (
	guest_handlers "gemma.link/handlers/guest"
	system_handlers "gemma.link/handlers/system"
	"gemma.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerGuestRoutes(app *fiber.App, deps Dependencies) {
	homeHandler := guest_handlers.NewHomeHandler(deps.RSVPService)
	profileHandler := guest_handlers.NewProfileHandler(deps.ProfileService)
	debugHandler := system_handlers.NewDebugHandler(deps.Config, deps.DB)

	// Ana sayfa ve LCV tam erişim ister.
	app.Get("/", middlewares.RequireAccess, homeHandler.ShowHome)
	app.Post("/rsvp", middlewares.RequireAccess, homeHandler.SubmitRSVP)

	// Profil kurulumu kimlik ister ama tam profil istemez; eksik profilin
	// gidebileceği tek sayfa burasıdır.
	app.Get("/profile-setup", middlewares.RequireIdentity, profileHandler.ShowSetup)
	app.Post("/profile-setup", middlewares.RequireIdentity, profileHandler.SubmitSetup)

	// Tanılama sayfası erişim durumundan bağımsız açıktır.
	app.Get("/debug", debugHandler.ShowDebug)
}
