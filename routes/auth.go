package routes

import (
	auth_handlers "gemma.link/handlers/auth" // İsim çakışmasını önlemek için alias
	"gemma.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, deps Dependencies) {
	authHandler := auth_handlers.NewAuthHandler(deps.IdentityService, deps.InviteService, deps.AuthService)

	// Davet kapısı. Kapıdan geçmiş misafir buraya geri gelemez.
	gateRoutes := app.Group("/login")
	gateRoutes.Use(middlewares.GuestMiddleware)
	gateRoutes.Get("/", authHandler.ShowInviteGate)
	gateRoutes.Post("/", authHandler.SubmitInviteCode)

	// Yönetici girişi davet kapısından bağımsız bir yan yoldur.
	authGroup := app.Group("/auth")
	authGroup.Get("/login", authHandler.ShowAdminLogin)
	authGroup.Post("/login", authHandler.AdminLogin)
	authGroup.Get("/logout", authHandler.Logout)
	authGroup.Post("/logout", authHandler.Logout)
}
