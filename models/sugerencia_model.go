package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados de sugerencia de conteo
const (
	SugerenciaPendiente = "pendiente"
	SugerenciaAprobada  = "aprobada"
	SugerenciaRechazada = "rechazada"
)

// SugerenciaConteo: los vendedores proponen productos para contar y el
// encargado las aprueba programando la fecha o las rechaza. Al aprobar
// se genera la tarea de control de stock correspondiente.
type SugerenciaConteo struct {
	gorm.Model
	SucursalID    uint `json:"sucursal_id" gorm:"index"`
	SugeridoPorID uint `json:"sugerido_por_id"`

	Motivo string `json:"motivo"`
	Estado string `json:"estado" gorm:"default:'pendiente';index"`

	FechaSugerencia time.Time `json:"fecha_sugerencia" gorm:"autoCreateTime"`

	ResueltoPorID        *uint      `json:"resuelto_por_id"`
	FechaResolucion      *time.Time `json:"fecha_resolucion"`
	FechaProgramada      *time.Time `json:"fecha_programada" gorm:"type:date"`
	ComentarioSupervisor string     `json:"comentario_supervisor"`

	// Tarea creada al aprobar
	TareaID *uint `json:"tarea_id"`

	Productos []ProductoSugerencia `json:"productos" gorm:"foreignKey:SugerenciaID"`
}

// ProductoSugerencia es el snapshot del producto al momento de sugerir
type ProductoSugerencia struct {
	gorm.Model
	SugerenciaID uint `json:"sugerencia_id" gorm:"index"`

	CodItem      string `json:"cod_item" gorm:"index"`
	Nombre       string `json:"nombre"`
	Precio       string `json:"precio"`
	StockSistema int    `json:"stock_sistema"`
}
