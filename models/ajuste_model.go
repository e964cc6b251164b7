package models

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de movimiento de ajuste de stock
const (
	MovimientoIngreso = "INGRESO"
	MovimientoEgreso  = "EGRESO"
	MovimientoAjuste  = "AJUSTE"
)

type Deposito struct {
	gorm.Model
	Nombre string `json:"nombre" gorm:"unique"`
	Codigo string `json:"codigo"`
}

// AjusteStock son movimientos de ajuste importados mensualmente desde CSV
type AjusteStock struct {
	gorm.Model
	DepositoID *uint     `json:"deposito_id" gorm:"index"`
	Fecha      time.Time `json:"fecha" gorm:"type:date"`

	CodItem        string `json:"cod_item" gorm:"index"`
	Producto       string `json:"producto"`
	Cantidad       int    `json:"cantidad"`
	TipoMovimiento string `json:"tipo_movimiento"`
	Personal       string `json:"personal"`
	Costo          string `json:"costo"`

	LoteImportacion int64  `json:"lote_importacion"`
	MesImportacion  string `json:"mes_importacion" gorm:"size:7;index"`
}

// FileLog registra archivos CSV ya procesados por el processor
type FileLog struct {
	gorm.Model
	Filename     string `json:"filename" gorm:"unique;not null"`
	DateModified time.Time
}
