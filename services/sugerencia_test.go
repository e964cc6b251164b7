package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mi-sucursal/models"
)

func TestTituloSugerencia(t *testing.T) {
	t.Run("arma el titulo con los nombres", func(t *testing.T) {
		titulo := TituloSugerencia([]models.ProductoSugerencia{
			{Nombre: "Alimento perro adulto 15kg"},
			{Nombre: "Piedras sanitarias 4kg"},
		})
		assert.Equal(t, "Conteo sugerido: Alimento perro adulto 15kg, Piedras sanitarias 4kg", titulo)
	})

	t.Run("recorta titulos largos", func(t *testing.T) {
		productos := make([]models.ProductoSugerencia, 0, 20)
		for i := 0; i < 20; i++ {
			productos = append(productos, models.ProductoSugerencia{
				Nombre: strings.Repeat("x", 30),
			})
		}
		titulo := TituloSugerencia(productos)
		assert.Len(t, titulo, 250)
		assert.True(t, strings.HasSuffix(titulo, "..."))
	})
}

func TestTareaDesdeSugerencia(t *testing.T) {
	hoy := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	programada := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	sugerencia := &models.SugerenciaConteo{
		SucursalID: 2,
		Motivo:     "Diferencias a la vista en gondola",
		Productos: []models.ProductoSugerencia{
			{Nombre: "Correa retractil mediana"},
		},
	}

	tarea := TareaDesdeSugerencia(sugerencia, 7, programada, hoy)

	assert.Equal(t, uint(2), tarea.SucursalID)
	assert.Equal(t, models.CategoriaControlStock, tarea.Categoria)
	assert.Equal(t, "Conteo sugerido: Correa retractil mediana", tarea.Titulo)
	assert.Contains(t, tarea.Descripcion, "Motivo: Diferencias a la vista en gondola")
	assert.Equal(t, uint(7), tarea.AsignadoPor)
	assert.Equal(t, programada, tarea.FechaVencimiento)
	assert.Equal(t, models.TareaPendiente, tarea.Estado)
}

func TestValidarResolucionSugerencia(t *testing.T) {
	require.NoError(t, ValidarResolucionSugerencia("rechazar", ""))
	require.NoError(t, ValidarResolucionSugerencia("aprobar", "2026-09-05"))
	assert.Error(t, ValidarResolucionSugerencia("aprobar", ""))
	assert.Error(t, ValidarResolucionSugerencia("archivar", "2026-09-05"))
}
