package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados de producto por vencer
const (
	VencimientoProximo   = "proximo"
	VencimientoVencido   = "vencido"
	VencimientoRetirado  = "retirado"
	VencimientoVendido   = "vendido"
	VencimientoEnviado   = "enviado"
	VencimientoArchivado = "archivado"
)

// Acciones comerciales posibles sobre un producto por vencer
const (
	AccionDescuento      = "descuento"
	AccionPromocion      = "promocion"
	AccionDevolucion     = "devolucion"
	AccionDestruccion    = "destruccion"
	AccionDonacion       = "donacion"
	AccionConsumoInterno = "consumo_interno"
	AccionRotacion       = "rotacion"
)

var AccionesComerciales = []string{
	AccionDescuento,
	AccionPromocion,
	AccionDevolucion,
	AccionDestruccion,
	AccionDonacion,
	AccionConsumoInterno,
	AccionRotacion,
}

type ProductoVencimiento struct {
	gorm.Model
	SucursalID uint  `json:"sucursal_id" gorm:"index"`
	EmployeeID *uint `json:"employee_id"`

	CodItem  string `json:"cod_item" gorm:"index"`
	Producto string `json:"producto"`
	Cantidad int    `json:"cantidad" gorm:"default:1"`
	Lote     string `json:"lote"`

	FechaVencimiento time.Time `json:"fecha_vencimiento" gorm:"type:date;index"`

	Estado string `json:"estado" gorm:"default:'proximo';index"`

	TieneAccionComercial bool       `json:"tiene_accion_comercial"`
	AccionComercial      *string    `json:"accion_comercial"`
	PorcentajeDescuento  *int       `json:"porcentaje_descuento"`
	SucursalDestinoID    *uint      `json:"sucursal_destino_id"`
	FechaMovimiento      *time.Time `json:"fecha_movimiento"`

	FechaRetiro *time.Time `json:"fecha_retiro"`
	Notas       string     `json:"notas"`

	Importado      bool   `json:"importado"`
	MesImportacion string `json:"mes_importacion"`
}
