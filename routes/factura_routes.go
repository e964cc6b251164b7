package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupFacturaRoutes(app *fiber.App, db *gorm.DB) {
	facturaController := controllers.NewFacturaController(db)

	api := app.Group(config.MAIN_ROUTES+"/facturas", middleware.AuthMiddleware)

	api.Get("/proveedores", facturaController.GetProveedores)
	api.Post("/proveedores", facturaController.CreateProveedor)
	api.Get("/", facturaController.GetAll)
	api.Post("/", facturaController.Create)
	api.Delete("/:id", middleware.RequireEncargado, facturaController.Delete)
}
