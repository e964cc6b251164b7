package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mi-sucursal/models"
)

// RunSeeders carga los datos minimos para operar: sucursales con sus
// cajas y un usuario administrador. Es idempotente, corre en cada
// arranque.
func RunSeeders(db *gorm.DB) {
	seedSucursales(db)
	seedAdmin(db)
	seedItems(db)
	seedProveedores(db)
}

func seedSucursales(db *gorm.DB) {
	sucursales := []models.Sucursal{
		{Codigo: "SUC001", Nombre: "Casa Central", Direccion: "Av. Rivadavia 4500", Telefono: "011-4901-1111", TieneVeterinaria: true, TienePeluqueria: true, Activa: true},
		{Codigo: "SUC002", Nombre: "Sucursal Norte", Direccion: "Av. Cabildo 2200", Telefono: "011-4780-2222", TienePeluqueria: true, Activa: true},
		{Codigo: "SUC003", Nombre: "Sucursal Oeste", Direccion: "Av. Rivadavia 11200", Telefono: "011-4641-3333", Activa: true},
	}

	for _, s := range sucursales {
		var existente models.Sucursal
		if err := db.Where("codigo = ?", s.Codigo).First(&existente).Error; err == nil {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Println("No se pudo crear la sucursal", s.Codigo, ":", err)
			continue
		}
		cajas := []models.Caja{
			{SucursalID: s.ID, Nombre: "Caja 1", Activa: true},
			{SucursalID: s.ID, Nombre: "Caja 2", Activa: true},
		}
		db.Create(&cajas)
	}
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.Employee{}).Where("usuario = ?", "admin").Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("No se pudo generar el hash del admin:", err)
		return
	}

	var central models.Sucursal
	db.Where("codigo = ?", "SUC001").First(&central)
	sucursalID := central.ID

	admin := models.Employee{
		Usuario:    "admin",
		Password:   string(hash),
		Nombre:     "Administrador",
		Apellido:   "General",
		Email:      "admin@misucursal.local",
		SucursalID: &sucursalID,
		Rol:        "admin",
		Puesto:     "Gerente General",
		Activo:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("No se pudo crear el usuario admin:", err)
	}
}

func seedItems(db *gorm.DB) {
	var count int64
	db.Model(&models.ItemCentral{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.ItemCentral{
		{CodItem: "ALI001", Item: "Alimento perro adulto 15kg", MarcaNombre: "Royal Canin", Stock: 24, Costo: "45.000", Habilitado: true},
		{CodItem: "ALI002", Item: "Alimento gato castrado 7.5kg", MarcaNombre: "Pro Plan", Stock: 18, Costo: "32.500", Habilitado: true},
		{CodItem: "ACC001", Item: "Correa retractil mediana", MarcaNombre: "Flexi", Stock: 7, Costo: "8.900", Habilitado: true},
		{CodItem: "ACC002", Item: "Cama plaza y media", MarcaNombre: "Pet Home", Stock: 4, Costo: "15.200", Habilitado: true},
		{CodItem: "HIG001", Item: "Piedras sanitarias 4kg", MarcaNombre: "Cat Chow", Stock: 30, Costo: "3.800", Habilitado: true},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Println("No se pudo sembrar el maestro de items:", err)
	}
}

func seedProveedores(db *gorm.DB) {
	var count int64
	db.Model(&models.ProveedorCentral{}).Count(&count)
	if count > 0 {
		return
	}

	proveedores := []models.ProveedorCentral{
		{Nombre: "Distribuidora Patagonia SA", CUIT: "30-61234567-8"},
		{Nombre: "Alimentos Mascota SRL", CUIT: "30-65432109-3"},
		{Nombre: "Veterinaria Mayorista Sur", CUIT: "30-68901234-5"},
	}
	if err := db.Create(&proveedores).Error; err != nil {
		log.Println("No se pudo sembrar el padron de proveedores:", err)
	}
}
