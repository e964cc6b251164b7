package services

import "strings"

// RolTier es la clasificacion cerrada de visibilidad de un empleado.
// Se resuelve una sola vez en el login y viaja en el token.
type RolTier string

const (
	// TierVendedor ve solo su sucursal y su caja
	TierVendedor RolTier = "vendedor"
	// TierEncargado ve todas las sucursales y puede crear tareas,
	// revisar conteos y resolver descargos
	TierEncargado RolTier = "encargado"
)

// Palabras clave genericas que otorgan nivel encargado. "encargado" a
// secas NO esta aca: un encargado de sucursal opera como vendedor.
var rolesEncargado = []string{
	"admin",
	"gerente",
	"gerencia",
	"auditor",
	"supervisor",
	"jefe",
}

// ClassifyRol clasifica rol y puesto en un tier. La frase calificada
// "encargado superior" se chequea antes que las palabras genericas:
// si no, un encargado comun quedaria con visibilidad de toda la red.
func ClassifyRol(rol, puesto string) RolTier {
	r := strings.ToLower(rol)
	p := strings.ToLower(puesto)

	if strings.Contains(r, "encargado superior") || strings.Contains(p, "encargado superior") {
		return TierEncargado
	}

	for _, palabra := range rolesEncargado {
		if strings.Contains(r, palabra) || strings.Contains(p, palabra) {
			return TierEncargado
		}
	}

	return TierVendedor
}

// EsEncargado es el predicado usado por los controllers para cortar
// acceso a vistas de toda la red
func EsEncargado(tier string) bool {
	return RolTier(tier) == TierEncargado
}
