package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupTareaRoutes(app *fiber.App, db *gorm.DB) {
	tareaController := controllers.NewTareaController(db)

	api := app.Group(config.MAIN_ROUTES+"/tareas", middleware.AuthMiddleware)

	api.Get("/", tareaController.GetAll)
	api.Get("/resumen", tareaController.Resumen)
	api.Get("/vencidas", tareaController.Vencidas)
	api.Get("/sucursales", middleware.RequireEncargado, tareaController.Sucursales)
	api.Post("/", middleware.RequireEncargado, tareaController.Create)
	api.Put("/:id/completar", tareaController.Completar)
	api.Put("/:id/estado", tareaController.UpdateEstado)
	api.Delete("/:id", middleware.RequireEncargado, tareaController.Delete)
}
