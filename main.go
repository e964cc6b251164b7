package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mi-sucursal/config"
	"mi-sucursal/controllers/idgen"
	"mi-sucursal/database"
	"mi-sucursal/routes"
)

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Fallo la migracion: %v", err)
	}
	database.RunSeeders(db)

	idgen.Init()

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupTareaRoutes(app, db)
	routes.SetupCierreRoutes(app, db)
	routes.SetupConteoRoutes(app, db)
	routes.SetupSugerenciaRoutes(app, db)
	routes.SetupVencimientoRoutes(app, db)
	routes.SetupRecontactoRoutes(app, db)
	routes.SetupVentaPerdidaRoutes(app, db)
	routes.SetupFacturaRoutes(app, db)
	routes.SetupAuditoriaRoutes(app, db)
	routes.SetupAjusteRoutes(app, db)
	routes.SetupItemRoutes(app, db)

	log.Println("Mi Sucursal escuchando en el puerto", config.APP_PORT)
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatalf("No se pudo levantar el servidor: %v", err)
	}
}
