package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupAuditoriaRoutes(app *fiber.App, db *gorm.DB) {
	auditoriaController := controllers.NewAuditoriaController(db)
	descargoController := controllers.NewDescargoController(db)

	api := app.Group(config.MAIN_ROUTES+"/auditoria", middleware.AuthMiddleware)

	api.Get("/indicadores", auditoriaController.Indicadores)
	api.Get("/mensuales", auditoriaController.GetMensuales)
	api.Get("/mensuales/todas", middleware.RequireEncargado, auditoriaController.GetTodas)
	api.Post("/mensuales", middleware.RequireEncargado, auditoriaController.UpsertMensual)
	api.Post("/mensuales/bulk", middleware.RequireEncargado, auditoriaController.BulkMensual)
	api.Get("/mensuales/export", middleware.RequireEncargado, auditoriaController.ExportMensual)

	api.Get("/descargos", descargoController.GetAll)
	api.Get("/descargos/resumen", descargoController.Resumen)
	api.Post("/descargos", descargoController.Create)
	api.Put("/descargos/:id/resolver", middleware.RequireEncargado, descargoController.Resolver)
}
