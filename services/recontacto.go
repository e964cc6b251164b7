package services

import (
	"fmt"

	"mi-sucursal/models"
)

// Resultados posibles de un intento de contacto
const (
	ResultadoInteresado    = "interesado"
	ResultadoRecuperado    = "recuperado"
	ResultadoContactado    = "contactado"
	ResultadoNoInteresado  = "no_interesado"
	ResultadoFallecido     = "fallecido"
	ResultadoNoContesta    = "no_contesta"
	ResultadoNumeroErroneo = "numero_erroneo"
	ResultadoSinDefinir    = "sin_definir"
)

// resultado del contacto -> estado resultante del cliente. Cualquier
// resultado no terminal deja al cliente en "contactado" y puede
// repetirse.
var estadoPorResultado = map[string]string{
	ResultadoInteresado:    models.RecontactoRecuperado,
	ResultadoRecuperado:    models.RecontactoRecuperado,
	ResultadoNoInteresado:  models.RecontactoNoInteresado,
	ResultadoFallecido:     models.RecontactoFallecido,
	ResultadoContactado:    models.RecontactoContactado,
	ResultadoNoContesta:    models.RecontactoContactado,
	ResultadoNumeroErroneo: models.RecontactoContactado,
	ResultadoSinDefinir:    models.RecontactoContactado,
}

// EsEstadoTerminal: los estados terminales absorben, no se registran
// mas contactos sobre el cliente
func EsEstadoTerminal(estado string) bool {
	switch estado {
	case models.RecontactoRecuperado, models.RecontactoNoInteresado, models.RecontactoFallecido:
		return true
	}
	return false
}

// AplicarResultadoContacto resuelve el nuevo estado del cliente segun
// el resultado del intento de contacto
func AplicarResultadoContacto(cliente *models.ClienteRecontacto, resultado string) error {
	if EsEstadoTerminal(cliente.Estado) {
		return fmt.Errorf("el cliente ya esta en estado terminal '%s'", cliente.Estado)
	}
	nuevo, ok := estadoPorResultado[resultado]
	if !ok {
		return fmt.Errorf("resultado de contacto desconocido: '%s'", resultado)
	}
	cliente.Estado = nuevo
	cliente.CantidadContactos++
	return nil
}
