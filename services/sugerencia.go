package services

import (
	"fmt"
	"strings"
	"time"

	"mi-sucursal/models"
)

const tituloSugerenciaMax = 250

// TituloSugerencia arma el titulo de la tarea a partir de los productos
// sugeridos, recortado para no desbordar la columna
func TituloSugerencia(productos []models.ProductoSugerencia) string {
	nombres := make([]string, 0, len(productos))
	for _, p := range productos {
		nombres = append(nombres, p.Nombre)
	}
	titulo := "Conteo sugerido: " + strings.Join(nombres, ", ")
	if len(titulo) > tituloSugerenciaMax {
		titulo = titulo[:tituloSugerenciaMax-3] + "..."
	}
	return titulo
}

// TareaDesdeSugerencia construye la tarea de control de stock que se
// crea al aprobar una sugerencia
func TareaDesdeSugerencia(sugerencia *models.SugerenciaConteo, resueltoPor uint, fechaProgramada time.Time, hoy time.Time) models.TareaSucursal {
	return models.TareaSucursal{
		SucursalID:       sugerencia.SucursalID,
		Categoria:        models.CategoriaControlStock,
		Titulo:           TituloSugerencia(sugerencia.Productos),
		Descripcion:      "Conteo de stock sugerido por empleado.\nMotivo: " + sugerencia.Motivo,
		AsignadoPor:      resueltoPor,
		FechaAsignacion:  hoy,
		FechaVencimiento: fechaProgramada,
		Estado:           models.TareaPendiente,
	}
}

// ValidarResolucionSugerencia chequea la accion del encargado: aprobar
// exige fecha programada
func ValidarResolucionSugerencia(accion string, fechaProgramada string) error {
	switch accion {
	case "aprobar":
		if fechaProgramada == "" {
			return fmt.Errorf("la fecha programada es requerida para aprobar")
		}
	case "rechazar":
	default:
		return fmt.Errorf("la accion debe ser 'aprobar' o 'rechazar'")
	}
	return nil
}
