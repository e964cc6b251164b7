package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados de cierre de caja. El pasaje de declarado a conciliado o
// con_diferencia lo hace el proceso externo de conciliacion.
const (
	CierreDeclarado     = "declarado"
	CierreConciliado    = "conciliado"
	CierreConDiferencia = "con_diferencia"
)

type Caja struct {
	gorm.Model
	SucursalID uint   `json:"sucursal_id" gorm:"index"`
	Nombre     string `json:"nombre"`
	Activa     bool   `json:"activa" gorm:"default:true"`
}

type CierreCaja struct {
	gorm.Model
	CajaID           uint      `json:"caja_id" gorm:"index"`
	FechaCaja        time.Time `json:"fecha_caja" gorm:"type:date;index"`
	MontoDeclarado   int64     `json:"monto_declarado"`
	MontoSistema     *int64    `json:"monto_sistema"`
	Diferencia       *int64    `json:"diferencia"`
	Estado           string    `json:"estado" gorm:"default:'declarado'"`
	TipoMonto        string    `json:"tipo_monto" gorm:"default:'recuento_fisico'"`
	IDPersonal       uint      `json:"id_personal"`
	Observaciones    string    `json:"observaciones"`
	FechaDeclaracion time.Time `json:"fecha_declaracion" gorm:"autoCreateTime"`
}
