package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	protegido := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	protegido.Get("/me", authController.Me)
	protegido.Get("/logout", authController.Logout)
}
