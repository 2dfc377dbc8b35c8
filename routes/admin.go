package routes

import (
	admin_handlers "gemma.link/handlers/admin"
	"gemma.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAdminRoutes(app *fiber.App, deps Dependencies) {
	inviteHandler := admin_handlers.NewInviteAdminHandler(deps.InviteService)
	tableHandler := admin_handlers.NewTableAdminHandler(deps.ProfileService, deps.RSVPService)

	adminGroup := app.Group("/admin")
	adminGroup.Use(middlewares.AdminMiddleware)

	adminGroup.Get("/", inviteHandler.ListInvites)
	adminGroup.Post("/invites", inviteHandler.CreateInvite)
	adminGroup.Post("/invites/:id/toggle", inviteHandler.ToggleInvite)

	adminGroup.Get("/tables", tableHandler.ListGuests)
	adminGroup.Post("/tables/assign", tableHandler.AssignTable)
}
