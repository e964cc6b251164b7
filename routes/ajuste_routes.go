package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupAjusteRoutes(app *fiber.App, db *gorm.DB) {
	ajusteController := controllers.NewAjusteController(db)

	api := app.Group(config.MAIN_ROUTES+"/ajustes", middleware.AuthMiddleware)

	api.Get("/depositos", ajusteController.GetDepositos)
	api.Get("/resumen", ajusteController.ResumenMensual)
	api.Get("/", ajusteController.GetAll)
	api.Post("/import", middleware.RequireEncargado, ajusteController.ImportCSV)
}
