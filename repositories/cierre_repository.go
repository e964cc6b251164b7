package repositories

import (
	"time"

	"gorm.io/gorm"

	"mi-sucursal/models"
)

type CierreRepository struct {
	db *gorm.DB
}

func NewCierreRepository(db *gorm.DB) *CierreRepository {
	return &CierreRepository{db}
}

type DiaPendiente struct {
	CajaID     uint      `json:"caja_id"`
	CajaNombre string    `json:"caja_nombre"`
	Fecha      time.Time `json:"fecha"`
}

// DiasPendientes devuelve, por caja activa de la sucursal, los dias de
// los ultimos 7 sin cierre declarado
func (r *CierreRepository) DiasPendientes(sucursalID uint) ([]DiaPendiente, error) {
	sql := `SELECT c.id AS caja_id, c.nombre AS caja_nombre, d.fecha
	FROM cajas c
	CROSS JOIN generate_series(
		CURRENT_DATE - INTERVAL '7 days',
		CURRENT_DATE - INTERVAL '1 day',
		INTERVAL '1 day') AS d(fecha)
	LEFT JOIN cierre_cajas cc
		ON cc.caja_id = c.id AND cc.fecha_caja = d.fecha::date AND cc.deleted_at IS NULL
	WHERE c.sucursal_id = ? AND c.activa = true AND c.deleted_at IS NULL
		AND cc.id IS NULL
	ORDER BY c.id, d.fecha`

	var pendientes []DiaPendiente
	if err := r.db.Raw(sql, sucursalID).Scan(&pendientes).Error; err != nil {
		return nil, err
	}
	return pendientes, nil
}

// ExisteCierre indica si la caja ya declaro para esa fecha
func (r *CierreRepository) ExisteCierre(cajaID uint, fecha time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.CierreCaja{}).
		Where("caja_id = ? AND fecha_caja = ?", cajaID, fecha.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

type ResumenCierres struct {
	Total          int   `json:"total"`
	Conciliados    int   `json:"conciliados"`
	ConDiferencia  int   `json:"con_diferencia"`
	Declarados     int   `json:"declarados"`
	DiferenciaNeta int64 `json:"diferencia_neta"`
}

// ResumenMes agrega los cierres de una sucursal en un periodo YYYY-MM
func (r *CierreRepository) ResumenMes(sucursalID uint, periodo string) (*ResumenCierres, error) {
	sql := `SELECT
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE cc.estado = 'conciliado') AS conciliados,
	COUNT(*) FILTER (WHERE cc.estado = 'con_diferencia') AS con_diferencia,
	COUNT(*) FILTER (WHERE cc.estado = 'declarado') AS declarados,
	COALESCE(SUM(cc.diferencia), 0) AS diferencia_neta
	FROM cierre_cajas cc
	JOIN cajas c ON c.id = cc.caja_id
	WHERE c.sucursal_id = ? AND to_char(cc.fecha_caja, 'YYYY-MM') = ?
		AND cc.deleted_at IS NULL`

	var resumen ResumenCierres
	if err := r.db.Raw(sql, sucursalID, periodo).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	return &resumen, nil
}
