package services

import (
	"strings"

	"mi-sucursal/models"
)

// Origenes de un resultado de busqueda de proveedores
const (
	ProveedorOrigenCentral = "central"
	ProveedorOrigenCustom  = "custom"
)

// ResultadoProveedor unifica el padron central de compras con los
// proveedores cargados a mano por las sucursales
type ResultadoProveedor struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	CUIT   string `json:"cuit"`
	Origen string `json:"origen"`
}

// MergeProveedores mezcla ambas fuentes en un solo listado, padron
// central primero, marcando el origen de cada fila
func MergeProveedores(centrales []models.ProveedorCentral, customs []models.ProveedorCustom) []ResultadoProveedor {
	resultados := make([]ResultadoProveedor, 0, len(centrales)+len(customs))
	for _, p := range centrales {
		resultados = append(resultados, ResultadoProveedor{
			ID:     p.ID,
			Nombre: strings.TrimSpace(p.Nombre),
			CUIT:   p.CUIT,
			Origen: ProveedorOrigenCentral,
		})
	}
	for _, p := range customs {
		resultados = append(resultados, ResultadoProveedor{
			ID:     p.ID,
			Nombre: strings.TrimSpace(p.Nombre),
			CUIT:   p.CUIT,
			Origen: ProveedorOrigenCustom,
		})
	}
	return resultados
}
