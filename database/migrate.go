package database

import (
	"gorm.io/gorm"

	"mi-sucursal/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Sucursal{},
		&models.Employee{},
		&models.LoginLog{},
		&models.TareaSucursal{},
		&models.Caja{},
		&models.CierreCaja{},
		&models.ConteoStock{},
		&models.ProductoConteo{},
		&models.SugerenciaConteo{},
		&models.ProductoSugerencia{},
		&models.ProductoVencimiento{},
		&models.ClienteRecontacto{},
		&models.RegistroContacto{},
		&models.VentaPerdida{},
		&models.ProveedorCentral{},
		&models.ProveedorCustom{},
		&models.FacturaProveedor{},
		&models.AuditoriaMensual{},
		&models.DescargoAuditoria{},
		&models.Deposito{},
		&models.AjusteStock{},
		&models.FileLog{},
		&models.ItemCentral{},
	)
}
