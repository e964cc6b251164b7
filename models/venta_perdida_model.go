package models

import (
	"time"

	"gorm.io/gorm"
)

// VentaPerdida registra ventas no concretadas por falta de stock
// o por producto no disponible en el catalogo
type VentaPerdida struct {
	gorm.Model
	SucursalID uint `json:"sucursal_id" gorm:"index"`
	EmployeeID uint `json:"employee_id"`

	CodItem         *string `json:"cod_item"` // nil si es producto nuevo
	ItemNombre      string  `json:"item_nombre"`
	Marca           string  `json:"marca"`
	Cantidad        int     `json:"cantidad"`
	EsProductoNuevo bool    `json:"es_producto_nuevo"`
	Observaciones   string  `json:"observaciones"`

	FechaRegistro time.Time `json:"fecha_registro" gorm:"autoCreateTime"`
}
