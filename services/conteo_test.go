package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mi-sucursal/models"
)

func intPtr(v int) *int { return &v }

func conteoDePrueba() *models.ConteoStock {
	return &models.ConteoStock{
		Estado: models.ConteoBorrador,
		Productos: []models.ProductoConteo{
			{CodItem: "ALI001", Precio: 1500, StockSistema: 10, StockReal: intPtr(8)},
			{CodItem: "ALI002", Precio: 2000, StockSistema: 5, StockReal: intPtr(5)},
			{CodItem: "ACC001", Precio: 500, StockSistema: 3, StockReal: nil},
			{CodItem: "ACC002", Precio: 750, StockSistema: 0, StockReal: intPtr(2)},
		},
	}
}

func TestRecalcularConteo(t *testing.T) {
	conteo := conteoDePrueba()
	RecalcularConteo(conteo)

	assert.Equal(t, 4, conteo.TotalProductos)
	assert.Equal(t, 3, conteo.ProductosContados)
	assert.Equal(t, 2, conteo.ProductosConDiferencia)

	require.NotNil(t, conteo.Productos[0].Diferencia)
	assert.Equal(t, -2, *conteo.Productos[0].Diferencia)
	require.NotNil(t, conteo.Productos[1].Diferencia)
	assert.Equal(t, 0, *conteo.Productos[1].Diferencia)
	assert.Nil(t, conteo.Productos[2].Diferencia)
	require.NotNil(t, conteo.Productos[3].Diferencia)
	assert.Equal(t, 2, *conteo.Productos[3].Diferencia)

	// -2*1500 + 0*2000 + 2*750
	assert.Equal(t, -1500.0, conteo.ValorizacionDiferencia)
}

func TestRecalcularConteoIdempotente(t *testing.T) {
	conteo := conteoDePrueba()

	RecalcularConteo(conteo)
	primera := conteo.ValorizacionDiferencia

	// editar un producto y volver a recalcular dos veces
	conteo.Productos[2].StockReal = intPtr(1)
	RecalcularConteo(conteo)
	RecalcularConteo(conteo)

	assert.Equal(t, primera-2*500, conteo.ValorizacionDiferencia)
	assert.Equal(t, 4, conteo.ProductosContados)
	assert.Equal(t, 3, conteo.ProductosConDiferencia)
}

func TestValidarEnvioConteo(t *testing.T) {
	conteo := conteoDePrueba()

	err := ValidarEnvioConteo(conteo)
	require.Error(t, err)
	assert.Equal(t, "Faltan 1 productos por contar", err.Error())

	conteo.Productos[2].StockReal = intPtr(3)
	assert.NoError(t, ValidarEnvioConteo(conteo))
}

func TestValidarEnvioConteoVariosFaltantes(t *testing.T) {
	conteo := &models.ConteoStock{
		Productos: []models.ProductoConteo{
			{CodItem: "A"}, {CodItem: "B"}, {CodItem: "C"},
		},
	}
	err := ValidarEnvioConteo(conteo)
	require.Error(t, err)
	assert.Equal(t, "Faltan 3 productos por contar", err.Error())
}

func TestValidarTransicionConteo(t *testing.T) {
	tests := []struct {
		desde string
		hacia string
		ok    bool
	}{
		{models.ConteoBorrador, models.ConteoEnviado, true},
		{models.ConteoEnviado, models.ConteoAprobado, true},
		{models.ConteoEnviado, models.ConteoRechazado, true},
		{models.ConteoAprobado, models.ConteoCerrado, true},
		{models.ConteoRechazado, models.ConteoBorrador, true},
		{models.ConteoBorrador, models.ConteoAprobado, false},
		{models.ConteoCerrado, models.ConteoBorrador, false},
		{models.ConteoEnviado, models.ConteoBorrador, false},
	}
	for _, tt := range tests {
		err := ValidarTransicionConteo(tt.desde, tt.hacia)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.desde, tt.hacia)
		} else {
			assert.Error(t, err, "%s -> %s", tt.desde, tt.hacia)
		}
	}
}

func TestProgresoConteo(t *testing.T) {
	conteo := conteoDePrueba()
	RecalcularConteo(conteo)
	assert.Equal(t, 75, ProgresoConteo(conteo))
}
