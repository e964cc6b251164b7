package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)

	api.Get("/resumen", dashboardController.Resumen)
	api.Get("/ventas", dashboardController.Ventas)
	api.Get("/objetivos", dashboardController.Objetivos)
	api.Get("/red", middleware.RequireEncargado, dashboardController.ResumenRed)
}
