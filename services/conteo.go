package services

import (
	"fmt"

	"mi-sucursal/models"
)

// RecalcularConteo recalcula diferencias por producto y los agregados
// del conteo. Es idempotente: correrlo de nuevo sobre el mismo estado
// no cambia nada.
func RecalcularConteo(conteo *models.ConteoStock) {
	contados := 0
	conDiferencia := 0
	valorizacion := 0.0

	for i := range conteo.Productos {
		p := &conteo.Productos[i]
		if p.StockReal == nil {
			p.Diferencia = nil
			continue
		}
		dif := *p.StockReal - p.StockSistema
		p.Diferencia = &dif
		contados++
		if dif != 0 {
			conDiferencia++
		}
		valorizacion += float64(dif) * p.Precio
	}

	conteo.TotalProductos = len(conteo.Productos)
	conteo.ProductosContados = contados
	conteo.ProductosConDiferencia = conDiferencia
	conteo.ValorizacionDiferencia = valorizacion
}

// ValidarEnvioConteo rechaza el envio a revision mientras queden
// productos sin contar. El mensaje nombra la cantidad exacta.
func ValidarEnvioConteo(conteo *models.ConteoStock) error {
	faltan := 0
	for _, p := range conteo.Productos {
		if p.StockReal == nil {
			faltan++
		}
	}
	if faltan > 0 {
		return fmt.Errorf("Faltan %d productos por contar", faltan)
	}
	return nil
}

// ProgresoConteo devuelve el avance del conteo en porcentaje entero
func ProgresoConteo(conteo *models.ConteoStock) int {
	return PorcentajePendientes(conteo.ProductosContados, conteo.TotalProductos)
}

// transiciones validas de estado de conteo
var transicionesConteo = map[string][]string{
	models.ConteoBorrador:  {models.ConteoEnviado},
	models.ConteoEnviado:   {models.ConteoAprobado, models.ConteoRechazado},
	models.ConteoAprobado:  {models.ConteoCerrado},
	models.ConteoRechazado: {models.ConteoBorrador, models.ConteoCerrado},
}

// ValidarTransicionConteo controla que el cambio de estado siga el
// flujo borrador, enviado, aprobado o rechazado, cerrado
func ValidarTransicionConteo(desde, hacia string) error {
	for _, permitido := range transicionesConteo[desde] {
		if permitido == hacia {
			return nil
		}
	}
	return fmt.Errorf("no se puede pasar un conteo de '%s' a '%s'", desde, hacia)
}
