package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupConteoRoutes(app *fiber.App, db *gorm.DB) {
	conteoController := controllers.NewConteoController(db)

	api := app.Group(config.MAIN_ROUTES+"/conteos", middleware.AuthMiddleware)

	api.Get("/resumen-sucursales", middleware.RequireEncargado, conteoController.ResumenPorSucursal)
	api.Get("/", conteoController.GetAll)
	api.Get("/:id", conteoController.GetByID)
	api.Post("/", conteoController.Create)
	api.Put("/:id/borrador", conteoController.GuardarBorrador)
	api.Put("/:id/productos/:productoId", conteoController.ActualizarProducto)
	api.Put("/:id/enviar", conteoController.Enviar)
	api.Put("/:id/revisar", middleware.RequireEncargado, conteoController.Revisar)
	api.Put("/:id/cerrar", middleware.RequireEncargado, conteoController.Cerrar)
}
