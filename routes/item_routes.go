package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupItemRoutes(app *fiber.App, db *gorm.DB) {
	itemController := controllers.NewItemController(db)

	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)

	api.Get("/search", itemController.Search)
}
