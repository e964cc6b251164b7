package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFechaEspanol(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"15/06/2025", "2025-06-15", true},
		{"3/1/2025", "2025-01-03", true},
		{"15-06-2025", "2025-06-15", true},
		{"2025-06-15", "2025-06-15", true},
		{"  15/06/2025  ", "2025-06-15", true},
		{"", "", false},
		{"no es fecha", "", false},
	}
	for _, tt := range tests {
		got, err := ParseFechaEspanol(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), tt.in)
	}
}

func TestParseNumeroEspanol(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"1234", 1234},
		{"0,5", 0.5},
		{"12.345.678", 12345678},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := ParseNumeroEspanol(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	got, err := ParseNumeroEspanol("abc")
	assert.Error(t, err)
	assert.Zero(t, got)
}

func TestParseMonto(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"150.000", 150000, true},
		{"$ 1.234.567", 1234567, true},
		{"1,500", 1500, true},
		{"-2.000", -2000, true},
		{"0", 0, true},
		{"", 0, false},
		{"12a34", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseMonto(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatMonto(t *testing.T) {
	assert.Equal(t, "$150.000", FormatMonto(150000))
	assert.Equal(t, "$1.234.567", FormatMonto(1234567))
	assert.Equal(t, "-$2.000", FormatMonto(-2000))
	assert.Equal(t, "$0", FormatMonto(0))
	assert.Equal(t, "$999", FormatMonto(999))
	assert.Equal(t, "$1.000", FormatMonto(1000))
}

func TestNormalizeDeposito(t *testing.T) {
	assert.Equal(t, "CENTRAL", NormalizeDeposito("DEPOSITO CENTRAL"))
	assert.Equal(t, "NORTE", NormalizeDeposito("  deposito NORTE "))
	assert.Equal(t, "CENTRAL", NormalizeDeposito("CENTRAL"))
}

func TestSimplifyTipoMovimiento(t *testing.T) {
	assert.Equal(t, "ingreso", SimplifyTipoMovimiento("Ingreso por compra"))
	assert.Equal(t, "ingreso", SimplifyTipoMovimiento("ENTRADA DEPOSITO"))
	assert.Equal(t, "egreso", SimplifyTipoMovimiento("salida por venta"))
	assert.Equal(t, "ajuste", SimplifyTipoMovimiento("ajuste manual"))
	assert.Equal(t, "ajuste", SimplifyTipoMovimiento(""))
}

func TestPeriodoActual(t *testing.T) {
	assert.Equal(t, "2025-06", PeriodoActual(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)))
}
