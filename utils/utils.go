package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatos de fecha aceptados en los archivos que exporta el sistema
// central, en orden de probabilidad
var formatosFecha = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	"02/01/06",
}

// ParseFechaEspanol interpreta fechas DD/MM/YYYY y variantes
func ParseFechaEspanol(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacia")
	}
	for _, formato := range formatosFecha {
		if t, err := time.Parse(formato, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: '%s'", s)
}

// ParseNumeroEspanol interpreta numeros con separador de miles con
// punto y decimales con coma ("1.234,56")
func ParseNumeroEspanol(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// ParseMonto interpreta un importe en pesos enteros descartando
// separadores de miles. No se admiten centavos.
func ParseMonto(s string) (int64, error) {
	s = strings.TrimSpace(s)
	limpio := strings.Builder{}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			limpio.WriteRune(r)
		case r == '.' || r == ',' || r == ' ' || r == '$':
			// separadores y simbolo de moneda
		case r == '-' && limpio.Len() == 0:
			limpio.WriteRune(r)
		default:
			return 0, fmt.Errorf("monto invalido: '%s'", s)
		}
	}
	if limpio.Len() == 0 {
		return 0, fmt.Errorf("monto vacio")
	}
	return strconv.ParseInt(limpio.String(), 10, 64)
}

// FormatMonto imprime un importe con separador de miles, sin decimales
func FormatMonto(monto int64) string {
	negativo := monto < 0
	if negativo {
		monto = -monto
	}
	digitos := strconv.FormatInt(monto, 10)

	var b strings.Builder
	if negativo {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	resto := len(digitos) % 3
	if resto > 0 {
		b.WriteString(digitos[:resto])
		if len(digitos) > resto {
			b.WriteByte('.')
		}
	}
	for i := resto; i < len(digitos); i += 3 {
		b.WriteString(digitos[i : i+3])
		if i+3 < len(digitos) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// NormalizeDeposito limpia el nombre de deposito de los exports, que
// llegan con el prefijo "DEPOSITO " y espacios irregulares
func NormalizeDeposito(nombre string) string {
	nombre = strings.TrimSpace(nombre)
	upper := strings.ToUpper(nombre)
	if strings.HasPrefix(upper, "DEPOSITO ") {
		nombre = strings.TrimSpace(nombre[len("DEPOSITO "):])
	}
	return nombre
}

// SimplifyTipoMovimiento colapsa las variantes del sistema central a
// ingreso, egreso o ajuste
func SimplifyTipoMovimiento(tipo string) string {
	t := strings.ToLower(strings.TrimSpace(tipo))
	switch {
	case strings.Contains(t, "ingreso"), strings.Contains(t, "entrada"), strings.Contains(t, "compra"):
		return "ingreso"
	case strings.Contains(t, "egreso"), strings.Contains(t, "salida"), strings.Contains(t, "venta"):
		return "egreso"
	default:
		return "ajuste"
	}
}

// PeriodoActual devuelve el periodo "YYYY-MM" de una fecha
func PeriodoActual(t time.Time) string {
	return t.Format("2006-01")
}
