package repositories

import (
	"gorm.io/gorm"
)

type RecontactoRepository struct {
	db *gorm.DB
}

func NewRecontactoRepository(db *gorm.DB) *RecontactoRepository {
	return &RecontactoRepository{db}
}

type ResumenRecontactos struct {
	Total        int `json:"total"`
	Pendientes   int `json:"pendientes"`
	Contactados  int `json:"contactados"`
	Recuperados  int `json:"recuperados"`
	NoInteresado int `json:"no_interesados"`
}

// Resumen cuenta los clientes de la campaña por estado
func (r *RecontactoRepository) Resumen(sucursalID uint) (*ResumenRecontactos, error) {
	sql := `SELECT
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE estado = 'pendiente') AS pendientes,
	COUNT(*) FILTER (WHERE estado = 'contactado') AS contactados,
	COUNT(*) FILTER (WHERE estado = 'recuperado') AS recuperados,
	COUNT(*) FILTER (WHERE estado = 'no_interesado') AS no_interesado
	FROM cliente_recontactos
	WHERE sucursal_id = ? AND deleted_at IS NULL`

	var resumen ResumenRecontactos
	if err := r.db.Raw(sql, sucursalID).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	return &resumen, nil
}
