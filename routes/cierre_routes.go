package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupCierreRoutes(app *fiber.App, db *gorm.DB) {
	cierreController := controllers.NewCierreController(db)

	api := app.Group(config.MAIN_ROUTES+"/cierres", middleware.AuthMiddleware)

	api.Get("/cajas", cierreController.GetCajas)
	api.Get("/pendientes", cierreController.Pendientes)
	api.Get("/resumen", cierreController.Resumen)
	api.Get("/", cierreController.GetAll)
	api.Post("/", cierreController.Create)
	api.Put("/:id/conciliar", middleware.RequireEncargado, cierreController.Conciliar)
}
