package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mi-sucursal/models"
)

func TestDetectarDelimitador(t *testing.T) {
	assert.Equal(t, ';', int32(DetectarDelimitador("fecha;deposito;cod_item")))
	assert.Equal(t, ',', int32(DetectarDelimitador("fecha,deposito,cod_item")))
	assert.Equal(t, '\t', int32(DetectarDelimitador("fecha\tdeposito\tcod_item")))
	// sin separadores reconocibles cae al punto y coma
	assert.Equal(t, ';', int32(DetectarDelimitador("unacolumna")))
}

func TestNormalizarContenido(t *testing.T) {
	assert.Equal(t, "hola", NormalizarContenido([]byte("hola")))

	// BOM UTF-8
	assert.Equal(t, "hola", NormalizarContenido([]byte{0xEF, 0xBB, 0xBF, 'h', 'o', 'l', 'a'}))

	// "Almacén" en latin-1: 0xE9 es la e con tilde
	latin1 := []byte{'A', 'l', 'm', 'a', 'c', 0xE9, 'n'}
	assert.Equal(t, "Almacén", NormalizarContenido(latin1))
}

func TestParseAjustesCSV(t *testing.T) {
	csv := "Fecha;Deposito;Codigo;Producto;Cantidad;Tipo;Personal;Costo\n" +
		"15/06/2025;DEPOSITO CENTRAL;ALI001;Alimento perro 15kg;10;Ingreso por compra;jperez;12.500,50\n" +
		"16/06/2025;DEPOSITO NORTE;ACC002;Correa mediana;2;Salida por venta;mgomez;1.200\n" +
		"no-es-fecha;DEPOSITO SUR;XXX;Roto;1;Ajuste;;\n"

	filas, errores := ParseAjustesCSV([]byte(csv), "2025-06", 42)

	require.Len(t, filas, 2)
	require.Len(t, errores, 1)
	assert.Contains(t, errores[0], "linea 4")

	primera := filas[0]
	assert.Equal(t, "CENTRAL", primera.Deposito)
	assert.Equal(t, "ALI001", primera.Ajuste.CodItem)
	assert.Equal(t, 10, primera.Ajuste.Cantidad)
	assert.Equal(t, models.MovimientoIngreso, primera.Ajuste.TipoMovimiento)
	assert.Equal(t, "jperez", primera.Ajuste.Personal)
	assert.Equal(t, int64(42), primera.Ajuste.LoteImportacion)
	assert.Equal(t, "2025-06", primera.Ajuste.MesImportacion)
	assert.Equal(t, "2025-06-15", primera.Ajuste.Fecha.Format("2006-01-02"))

	segunda := filas[1]
	assert.Equal(t, "NORTE", segunda.Deposito)
	assert.Equal(t, models.MovimientoEgreso, segunda.Ajuste.TipoMovimiento)
}

func TestParseAjustesCSVConComas(t *testing.T) {
	csv := "Fecha,Deposito,Codigo,Producto,Cantidad,Tipo\n" +
		"01/06/2025,DEPOSITO CENTRAL,ALI003,Piedras sanitarias,5,AJUSTE MANUAL\n"

	filas, errores := ParseAjustesCSV([]byte(csv), "2025-06", 1)

	require.Empty(t, errores)
	require.Len(t, filas, 1)
	assert.Equal(t, models.MovimientoAjuste, filas[0].Ajuste.TipoMovimiento)
	assert.Equal(t, "", filas[0].Ajuste.Personal)
}
