package models

import (
	"time"

	"gorm.io/gorm"
)

// Categorias fijas de tareas de sucursal
const (
	CategoriaOrdenLimpieza   = "ORDEN Y LIMPIEZA"
	CategoriaMantenimiento   = "MANTENIMIENTO SUCURSAL"
	CategoriaControlStock    = "CONTROL Y GESTION DE STOCK"
	CategoriaGestionAdmin    = "GESTION ADMINISTRATIVA EN SISTEMA"
)

var CategoriasTareas = []string{
	CategoriaOrdenLimpieza,
	CategoriaMantenimiento,
	CategoriaControlStock,
	CategoriaGestionAdmin,
}

// Estados de tarea
const (
	TareaPendiente  = "pendiente"
	TareaEnProgreso = "en_progreso"
	TareaCompletada = "completada"
)

type TareaSucursal struct {
	gorm.Model
	SucursalID       uint       `json:"sucursal_id" gorm:"index"`
	Categoria        string     `json:"categoria" gorm:"default:'ORDEN Y LIMPIEZA'"`
	Titulo           string     `json:"titulo"`
	Descripcion      string     `json:"descripcion"`
	AsignadoPor      uint       `json:"asignado_por"`
	FechaAsignacion  time.Time  `json:"fecha_asignacion"`
	FechaVencimiento time.Time  `json:"fecha_vencimiento"`
	Estado           string     `json:"estado" gorm:"default:'pendiente';index"`
	CompletadoPor    *uint      `json:"completado_por"`
	FechaCompletado  *time.Time `json:"fecha_completado"`
}

// Vencida indica si la tarea sigue abierta pasada su fecha de vencimiento
func (t *TareaSucursal) Vencida(hoy time.Time) bool {
	return t.Estado != TareaCompletada && t.FechaVencimiento.Before(hoy.Truncate(24*time.Hour))
}
