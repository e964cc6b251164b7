package services

import (
	"time"

	"mi-sucursal/models"
)

// ConciliarCierre carga el monto del sistema sobre un cierre declarado
// y resuelve diferencia y estado. Diferencia = sistema - declarado:
// positiva es sobrante, negativa faltante.
func ConciliarCierre(cierre *models.CierreCaja, montoSistema int64) {
	diferencia := montoSistema - cierre.MontoDeclarado
	cierre.MontoSistema = &montoSistema
	cierre.Diferencia = &diferencia
	if diferencia == 0 {
		cierre.Estado = models.CierreConciliado
	} else {
		cierre.Estado = models.CierreConDiferencia
	}
}

// DiasSinCierre devuelve los dias de los ultimos 7 (sin contar hoy) en
// los que la caja no tuvo declaracion. Se usa para alertar al cerrar
// sesion.
func DiasSinCierre(cierres []models.CierreCaja, hoy time.Time) []time.Time {
	declarados := make(map[string]bool, len(cierres))
	for _, c := range cierres {
		declarados[c.FechaCaja.Format("2006-01-02")] = true
	}

	inicio := hoy.AddDate(0, 0, -7)
	faltantes := []time.Time{}
	for d := inicio; d.Before(hoy); d = d.AddDate(0, 0, 1) {
		dia := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		if !declarados[dia.Format("2006-01-02")] {
			faltantes = append(faltantes, dia)
		}
	}
	return faltantes
}
