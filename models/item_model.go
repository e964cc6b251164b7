package models

import "gorm.io/gorm"

// ItemCentral es el maestro de productos sincronizado desde el
// sistema central; solo lectura para este servicio
type ItemCentral struct {
	gorm.Model
	CodItem     string `json:"cod_item" gorm:"unique;index"`
	Item        string `json:"item"`
	MarcaNombre string `json:"marca_nombre"`
	Stock       int    `json:"stock"`
	Costo       string `json:"costo"`
	Habilitado  bool   `json:"habilitado" gorm:"default:true"`
}
