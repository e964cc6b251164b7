package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupVentaPerdidaRoutes(app *fiber.App, db *gorm.DB) {
	ventaPerdidaController := controllers.NewVentaPerdidaController(db)

	api := app.Group(config.MAIN_ROUTES+"/ventas-perdidas", middleware.AuthMiddleware)

	api.Get("/resumen", ventaPerdidaController.Resumen)
	api.Get("/", ventaPerdidaController.GetAll)
	api.Post("/", ventaPerdidaController.Create)
	api.Delete("/:id", ventaPerdidaController.Delete)
}
