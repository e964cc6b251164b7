package models

import (
	"time"

	"gorm.io/gorm"
)

// Categorias de descargo (coinciden con las categorias de auditoria)
var CategoriasDescargo = []string{
	"orden_limpieza",
	"pedidos",
	"gestion_administrativa",
	"club_mascotera",
	"control_stock_caja",
}

// Estados de descargo
const (
	DescargoPendiente = "pendiente"
	DescargoAprobado  = "aprobado"
	DescargoRechazado = "rechazado"
)

// AuditoriaMensual guarda los puntajes (0-100) por categoria de cada
// sucursal en un periodo "YYYY-MM"
type AuditoriaMensual struct {
	gorm.Model
	SucursalID uint   `json:"sucursal_id" gorm:"index"`
	Periodo    string `json:"periodo" gorm:"size:7;index"`

	OrdenLimpieza         *float64 `json:"orden_limpieza"`
	Pedidos               *float64 `json:"pedidos"`
	GestionAdministrativa *float64 `json:"gestion_administrativa"`
	ClubMascotera         *float64 `json:"club_mascotera"`
	ControlStockCaja      *float64 `json:"control_stock_caja"`

	PuntajeTotal *float64 `json:"puntaje_total"`

	Observaciones string `json:"observaciones"`
}

// DescargoAuditoria permite a los empleados justificar observaciones
// de auditoria; los encargados los aprueban o rechazan
type DescargoAuditoria struct {
	gorm.Model
	SucursalID  uint `json:"sucursal_id" gorm:"index"`
	CreadoPorID uint `json:"creado_por_id"`

	Categoria   string `json:"categoria" gorm:"index"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`

	Estado        string    `json:"estado" gorm:"default:'pendiente';index"`
	FechaDescargo time.Time `json:"fecha_descargo" gorm:"autoCreateTime"`

	ResueltoPorID     *uint      `json:"resuelto_por_id"`
	FechaResolucion   *time.Time `json:"fecha_resolucion"`
	ComentarioAuditor string     `json:"comentario_auditor"`

	// Referencia opcional a un item puntual (tarea, conteo, cierre)
	ReferenciaID   *uint  `json:"referencia_id"`
	ReferenciaTipo string `json:"referencia_tipo"`
}
