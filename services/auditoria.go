package services

import (
	"math"
	"time"

	"mi-sucursal/models"
)

// Severidad de un indicador de auditoria. Los umbrales son fijos por
// indicador y los consume el front para colorear las tarjetas.
const (
	SeveridadOK      = "ok"
	SeveridadAlerta  = "alerta"
	SeveridadCritico = "critico"
)

// IndicadorAuditoria es una metrica ya resuelta para una sucursal.
// SinDatos marca que la fuente no respondio y el valor es el cero de
// relleno, no una medicion.
type IndicadorAuditoria struct {
	Nombre     string  `json:"nombre"`
	Porcentaje float64 `json:"porcentaje"`
	Severidad  string  `json:"severidad"`
	CumpleMeta *bool   `json:"cumple_meta,omitempty"`
	SinDatos   bool    `json:"sin_datos,omitempty"`
}

// IndicadorSinDatos es el relleno de una fuente caida
func IndicadorSinDatos(nombre string) IndicadorAuditoria {
	return IndicadorAuditoria{Nombre: nombre, Severidad: SeveridadOK, SinDatos: true}
}

// TareaVencidaAudit es una tarea que lleva mas de 5 dias sin completar
type TareaVencidaAudit struct {
	TareaID          uint   `json:"tarea_id"`
	Titulo           string `json:"titulo"`
	Categoria        string `json:"categoria"`
	DiasSinCompletar int    `json:"dias_sin_completar"`
}

// diasVencimientoAuditoria: una tarea entra al listado de auditoria
// cuando supera este umbral de dias enteros sin completarse
const diasVencimientoAuditoria = 5

// PorcentajePendientes devuelve round(100*pendientes/total), 0 cuando
// no hay tareas
func PorcentajePendientes(pendientes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(pendientes) / float64(total) * 100))
}

// TareasVencidasAuditoria filtra las tareas no completadas con mas de
// 5 dias enteros desde su asignacion
func TareasVencidasAuditoria(tareas []models.TareaSucursal, ahora time.Time) []TareaVencidaAudit {
	vencidas := []TareaVencidaAudit{}
	for _, t := range tareas {
		if t.Estado == models.TareaCompletada {
			continue
		}
		dias := int(ahora.Sub(t.FechaAsignacion).Hours() / 24)
		if dias <= diasVencimientoAuditoria {
			continue
		}
		vencidas = append(vencidas, TareaVencidaAudit{
			TareaID:          t.ID,
			Titulo:           t.Titulo,
			Categoria:        t.Categoria,
			DiasSinCompletar: dias,
		})
	}
	return vencidas
}

// SeveridadOrden: porcentaje de tareas pendientes de orden y limpieza
func SeveridadOrden(pct float64) string {
	switch {
	case pct <= 20:
		return SeveridadOK
	case pct <= 50:
		return SeveridadAlerta
	default:
		return SeveridadCritico
	}
}

// SeveridadPedidos: porcentaje de rechazo de pedidos recientes
func SeveridadPedidos(pct float64) string {
	switch {
	case pct <= 5:
		return SeveridadOK
	case pct <= 15:
		return SeveridadAlerta
	default:
		return SeveridadCritico
	}
}

// SeveridadGastos: gastos del mes sobre ventas del mes
func SeveridadGastos(pct float64) string {
	switch {
	case pct <= 10:
		return SeveridadOK
	case pct <= 15:
		return SeveridadAlerta
	default:
		return SeveridadCritico
	}
}

// SeveridadClub: a la inversa de los demas, menos es mejor. La meta
// limita la proporcion de facturas a consumidor final.
func SeveridadClub(pct float64, meta int) string {
	switch {
	case pct <= float64(meta):
		return SeveridadOK
	case pct <= float64(meta+10):
		return SeveridadAlerta
	default:
		return SeveridadCritico
	}
}

// SeveridadCaja: diferencia cero es conciliado, hasta $1000 de desvio
// se tolera como alerta
func SeveridadCaja(diferencia int64) string {
	switch {
	case diferencia == 0:
		return SeveridadOK
	case diferencia >= -1000 && diferencia <= 1000:
		return SeveridadAlerta
	default:
		return SeveridadCritico
	}
}

// IndicadorClub arma la metrica de club mascotera: proporcion de
// facturas a consumidor final contra la meta configurada
func IndicadorClub(facturasConsumidorFinal, totalFacturas, meta int) IndicadorAuditoria {
	pct := 0.0
	if totalFacturas > 0 {
		pct = math.Round(float64(facturasConsumidorFinal) / float64(totalFacturas) * 100)
	}
	cumple := pct <= float64(meta)
	return IndicadorAuditoria{
		Nombre:     "club_mascotera",
		Porcentaje: pct,
		Severidad:  SeveridadClub(pct, meta),
		CumpleMeta: &cumple,
	}
}

// RatioGastos devuelve gastos sobre ventas del mes con un decimal
func RatioGastos(gastos, ventas float64) float64 {
	if ventas <= 0 {
		return 0
	}
	return math.Round(gastos/ventas*1000) / 10
}

// PuntajeTotal promedia las categorias cargadas del puntaje mensual.
// Categorias sin nota no arrastran el promedio.
func PuntajeTotal(a *models.AuditoriaMensual) *float64 {
	notas := []*float64{
		a.OrdenLimpieza,
		a.Pedidos,
		a.GestionAdministrativa,
		a.ClubMascotera,
		a.ControlStockCaja,
	}
	suma := 0.0
	n := 0
	for _, nota := range notas {
		if nota == nil {
			continue
		}
		suma += *nota
		n++
	}
	if n == 0 {
		return nil
	}
	total := math.Round(suma/float64(n)*10) / 10
	return &total
}
