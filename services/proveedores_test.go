package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"mi-sucursal/models"
)

func TestMergeProveedores(t *testing.T) {
	centrales := []models.ProveedorCentral{
		{Model: gorm.Model{ID: 10}, Nombre: " Distribuidora Patagonia ", CUIT: "30-11111111-1"},
	}
	customs := []models.ProveedorCustom{
		{Model: gorm.Model{ID: 3}, Nombre: "Forrajeria El Galpon", CUIT: "20-22222222-2"},
	}

	resultados := MergeProveedores(centrales, customs)

	require.Len(t, resultados, 2)
	assert.Equal(t, ResultadoProveedor{
		ID: 10, Nombre: "Distribuidora Patagonia", CUIT: "30-11111111-1", Origen: ProveedorOrigenCentral,
	}, resultados[0])
	assert.Equal(t, ResultadoProveedor{
		ID: 3, Nombre: "Forrajeria El Galpon", CUIT: "20-22222222-2", Origen: ProveedorOrigenCustom,
	}, resultados[1])
}

func TestMergeProveedoresVacio(t *testing.T) {
	resultados := MergeProveedores(nil, nil)
	assert.NotNil(t, resultados)
	assert.Empty(t, resultados)
}
