package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados del workflow de conteo: borrador -> enviado -> aprobado|rechazado -> cerrado
const (
	ConteoBorrador  = "borrador"
	ConteoEnviado   = "enviado"
	ConteoAprobado  = "aprobado"
	ConteoRechazado = "rechazado"
	ConteoCerrado   = "cerrado"
)

type ConteoStock struct {
	gorm.Model
	TareaID    uint `json:"tarea_id" gorm:"index"`
	SucursalID uint `json:"sucursal_id" gorm:"index"`
	EmpleadoID uint `json:"empleado_id"`

	Estado string `json:"estado" gorm:"default:'borrador';index"`

	// Se setea al guardar o enviar; importante para gestion de compras
	FechaConteo *time.Time `json:"fecha_conteo"`

	RevisadoPor        *uint      `json:"revisado_por"`
	FechaRevision      *time.Time `json:"fecha_revision"`
	ComentariosAuditor string     `json:"comentarios_auditor"`

	// Agregados recalculados en cada edicion
	ValorizacionDiferencia  float64 `json:"valorizacion_diferencia"`
	TotalProductos          int     `json:"total_productos"`
	ProductosContados       int     `json:"productos_contados"`
	ProductosConDiferencia  int     `json:"productos_con_diferencia"`

	Productos []ProductoConteo `json:"productos" gorm:"foreignKey:ConteoID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProductoConteo es un snapshot del producto al momento de crear la tarea
type ProductoConteo struct {
	gorm.Model
	ConteoID uint `json:"conteo_id" gorm:"index"`

	CodItem       string  `json:"cod_item" gorm:"index"`
	Nombre        string  `json:"nombre"`
	Precio        float64 `json:"precio"`
	StockSistema  int     `json:"stock_sistema"`
	StockReal     *int    `json:"stock_real"`
	Diferencia    *int    `json:"diferencia"`
	Observaciones string  `json:"observaciones"`
}
