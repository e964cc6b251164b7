package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupVencimientoRoutes(app *fiber.App, db *gorm.DB) {
	vencimientoController := controllers.NewVencimientoController(db)

	api := app.Group(config.MAIN_ROUTES+"/vencimientos", middleware.AuthMiddleware)

	api.Get("/resumen", vencimientoController.Resumen)
	api.Get("/", vencimientoController.GetAll)
	api.Post("/", vencimientoController.Create)
	api.Post("/import", vencimientoController.ImportCSV)
	api.Put("/:id/accion", vencimientoController.AplicarAccion)
	api.Put("/:id/estado", vencimientoController.UpdateEstado)
	api.Delete("/:id", middleware.RequireEncargado, vencimientoController.Delete)
}
