package models

import (
	"time"

	"gorm.io/gorm"
)

// ProveedorCentral es el padron de proveedores sincronizado desde las
// compras del sistema central; solo lectura para este servicio
type ProveedorCentral struct {
	gorm.Model
	Nombre string `json:"nombre" gorm:"index"`
	CUIT   string `json:"cuit"`
}

// ProveedorCustom son proveedores cargados por usuarios que no
// existen en el maestro central de compras
type ProveedorCustom struct {
	gorm.Model
	Nombre      string `json:"nombre"`
	CUIT        string `json:"cuit"`
	CreadoPorID uint   `json:"creado_por_id"`
	SucursalID  uint   `json:"sucursal_id" gorm:"index"`
}

type FacturaProveedor struct {
	gorm.Model
	SucursalID uint `json:"sucursal_id" gorm:"index"`
	EmployeeID uint `json:"employee_id" gorm:"index"`

	// Uno de los dos: maestro central o custom
	ProveedorID       *uint  `json:"proveedor_id"`
	ProveedorCustomID *uint  `json:"proveedor_custom_id"`
	ProveedorNombre   string `json:"proveedor_nombre"`

	NumeroFactura string `json:"numero_factura"`
	ImagenBase64  string `json:"imagen_base64" gorm:"type:text"`

	TieneInconsistencia   bool   `json:"tiene_inconsistencia"`
	DetalleInconsistencia string `json:"detalle_inconsistencia"`

	Observaciones string     `json:"observaciones"`
	FechaFactura  *time.Time `json:"fecha_factura" gorm:"type:date"`
	FechaRegistro time.Time  `json:"fecha_registro" gorm:"autoCreateTime"`
}
