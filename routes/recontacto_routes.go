package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers"
	"mi-sucursal/middleware"
)

func SetupRecontactoRoutes(app *fiber.App, db *gorm.DB) {
	recontactoController := controllers.NewRecontactoController(db)

	api := app.Group(config.MAIN_ROUTES+"/recontactos", middleware.AuthMiddleware)

	api.Get("/resumen", recontactoController.Resumen)
	api.Post("/import", recontactoController.ImportCSV)
	api.Get("/", recontactoController.GetAll)
	api.Post("/", recontactoController.Create)
	api.Get("/:id/historial", recontactoController.GetHistorial)
	api.Post("/:id/contactos", recontactoController.RegistrarContacto)
	api.Put("/:id/estado", middleware.RequireEncargado, recontactoController.UpdateEstado)
	api.Delete("/:id", middleware.RequireEncargado, recontactoController.Delete)
}
