package repositories

import (
	"gorm.io/gorm"
)

type TareaRepository struct {
	db *gorm.DB
}

func NewTareaRepository(db *gorm.DB) *TareaRepository {
	return &TareaRepository{db}
}

type ResumenTareas struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	EnProgreso  int `json:"en_progreso"`
	Completadas int `json:"completadas"`
	Vencidas    int `json:"vencidas"`
}

// Resumen cuenta las tareas por estado de una sucursal. Vencidas son
// las abiertas con mas de 5 dias desde la asignacion.
func (r *TareaRepository) Resumen(sucursalID uint) (*ResumenTareas, error) {
	sql := `SELECT
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE estado = 'pendiente') AS pendientes,
	COUNT(*) FILTER (WHERE estado = 'en_progreso') AS en_progreso,
	COUNT(*) FILTER (WHERE estado = 'completada') AS completadas,
	COUNT(*) FILTER (WHERE estado <> 'completada'
		AND fecha_asignacion < NOW() - INTERVAL '5 days') AS vencidas
	FROM tarea_sucursals
	WHERE sucursal_id = ? AND deleted_at IS NULL`

	var resumen ResumenTareas
	if err := r.db.Raw(sql, sucursalID).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	return &resumen, nil
}

type ResumenTareasSucursal struct {
	SucursalID     uint   `json:"sucursal_id"`
	SucursalNombre string `json:"sucursal_nombre"`
	Total          int    `json:"total"`
	Pendientes     int    `json:"pendientes"`
	Completadas    int    `json:"completadas"`
}

// ResumenPorSucursal arma la tabla de cumplimiento de toda la red para
// la vista de encargados
func (r *TareaRepository) ResumenPorSucursal() ([]ResumenTareasSucursal, error) {
	sql := `SELECT s.id AS sucursal_id, s.nombre AS sucursal_nombre,
	COUNT(t.id) AS total,
	COUNT(t.id) FILTER (WHERE t.estado = 'pendiente') AS pendientes,
	COUNT(t.id) FILTER (WHERE t.estado = 'completada') AS completadas
	FROM sucursals s
	LEFT JOIN tarea_sucursals t ON t.sucursal_id = s.id AND t.deleted_at IS NULL
	WHERE s.activa = true AND s.deleted_at IS NULL
	GROUP BY s.id, s.nombre
	ORDER BY s.nombre`

	var resumen []ResumenTareasSucursal
	if err := r.db.Raw(sql).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	return resumen, nil
}
