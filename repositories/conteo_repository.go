package repositories

import (
	"gorm.io/gorm"
)

type ConteoRepository struct {
	db *gorm.DB
}

func NewConteoRepository(db *gorm.DB) *ConteoRepository {
	return &ConteoRepository{db}
}

type ResumenConteosSucursal struct {
	SucursalID             uint    `json:"sucursal_id"`
	SucursalNombre         string  `json:"sucursal_nombre"`
	Total                  int     `json:"total"`
	EnBorrador             int     `json:"en_borrador"`
	Enviados               int     `json:"enviados"`
	Aprobados              int     `json:"aprobados"`
	Rechazados             int     `json:"rechazados"`
	ValorizacionAcumulada  float64 `json:"valorizacion_acumulada"`
}

// ResumenPorSucursal agrega los conteos de toda la red para la vista
// de auditoria
func (r *ConteoRepository) ResumenPorSucursal() ([]ResumenConteosSucursal, error) {
	sql := `SELECT s.id AS sucursal_id, s.nombre AS sucursal_nombre,
	COUNT(cs.id) AS total,
	COUNT(cs.id) FILTER (WHERE cs.estado = 'borrador') AS en_borrador,
	COUNT(cs.id) FILTER (WHERE cs.estado = 'enviado') AS enviados,
	COUNT(cs.id) FILTER (WHERE cs.estado = 'aprobado') AS aprobados,
	COUNT(cs.id) FILTER (WHERE cs.estado = 'rechazado') AS rechazados,
	COALESCE(SUM(cs.valorizacion_diferencia), 0) AS valorizacion_acumulada
	FROM sucursals s
	LEFT JOIN conteo_stocks cs ON cs.sucursal_id = s.id AND cs.deleted_at IS NULL
	WHERE s.activa = true AND s.deleted_at IS NULL
	GROUP BY s.id, s.nombre
	ORDER BY s.nombre`

	var resumen []ResumenConteosSucursal
	if err := r.db.Raw(sql).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	return resumen, nil
}

type ResumenRechazos struct {
	Total      int `json:"total"`
	Rechazados int `json:"rechazados"`
}

// Rechazos cuenta conteos revisados y rechazados de una sucursal en
// los ultimos 30 dias, insumo del indicador de pedidos
func (r *ConteoRepository) Rechazos(sucursalID uint) (*ResumenRechazos, error) {
	sql := `SELECT
	COUNT(*) FILTER (WHERE estado IN ('aprobado', 'rechazado', 'cerrado')) AS total,
	COUNT(*) FILTER (WHERE estado = 'rechazado') AS rechazados
	FROM conteo_stocks
	WHERE sucursal_id = ? AND fecha_revision >= NOW() - INTERVAL '30 days'
		AND deleted_at IS NULL`

	var resumen ResumenRechazos
	if err := r.db.Raw(sql, sucursalID).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	return &resumen, nil
}
