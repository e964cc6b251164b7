package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRol(t *testing.T) {
	tests := []struct {
		name   string
		rol    string
		puesto string
		want   RolTier
	}{
		{"encargado superior en puesto", "vendedor", "Encargado Superior", TierEncargado},
		{"encargado superior mayusculas", "ENCARGADO SUPERIOR", "", TierEncargado},
		{"encargado superior mixto", "Encargado superior de zona", "", TierEncargado},
		{"encargado a secas es vendedor", "Encargado", "", TierVendedor},
		{"encargado de sucursal", "encargado", "encargado de sucursal", TierVendedor},
		{"auditor", "Auditor", "", TierEncargado},
		{"admin", "admin", "", TierEncargado},
		{"gerente regional", "", "Gerente Regional", TierEncargado},
		{"gerencia", "gerencia comercial", "", TierEncargado},
		{"supervisor", "", "Supervisor de ventas", TierEncargado},
		{"jefe de deposito", "jefe de deposito", "", TierEncargado},
		{"vendedor", "vendedor", "atencion al cliente", TierVendedor},
		{"cajero", "cajero", "", TierVendedor},
		{"vacio", "", "", TierVendedor},
		{"peluquero", "peluquero", "peluqueria canina", TierVendedor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRol(tt.rol, tt.puesto))
		})
	}
}

func TestEsEncargado(t *testing.T) {
	assert.True(t, EsEncargado("encargado"))
	assert.False(t, EsEncargado("vendedor"))
	assert.False(t, EsEncargado(""))
}
