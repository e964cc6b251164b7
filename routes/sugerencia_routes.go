package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupSugerenciaRoutes(app *fiber.App, db *gorm.DB) {
	sugerenciaController := controllers.NewSugerenciaController(db)

	api := app.Group(config.MAIN_ROUTES+"/sugerencias", middleware.AuthMiddleware)

	api.Get("/pendientes/count", sugerenciaController.PendientesCount)
	api.Get("/", sugerenciaController.GetAll)
	api.Post("/", sugerenciaController.Create)
	api.Put("/:id/resolver", middleware.RequireEncargado, sugerenciaController.Resolver)
}
