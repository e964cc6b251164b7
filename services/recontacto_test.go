package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mi-sucursal/models"
)

func TestAplicarResultadoContacto(t *testing.T) {
	t.Run("interesado recupera al cliente", func(t *testing.T) {
		cliente := &models.ClienteRecontacto{Estado: models.RecontactoPendiente}

		err := AplicarResultadoContacto(cliente, ResultadoInteresado)

		require.NoError(t, err)
		assert.Equal(t, models.RecontactoRecuperado, cliente.Estado)
		assert.Equal(t, 1, cliente.CantidadContactos)
	})

	t.Run("recuperado recupera al cliente", func(t *testing.T) {
		cliente := &models.ClienteRecontacto{Estado: models.RecontactoPendiente}

		err := AplicarResultadoContacto(cliente, ResultadoRecuperado)

		require.NoError(t, err)
		assert.Equal(t, models.RecontactoRecuperado, cliente.Estado)
		assert.Equal(t, 1, cliente.CantidadContactos)
	})

	t.Run("contactado deja al cliente en contactado", func(t *testing.T) {
		cliente := &models.ClienteRecontacto{Estado: models.RecontactoPendiente}

		err := AplicarResultadoContacto(cliente, ResultadoContactado)

		require.NoError(t, err)
		assert.Equal(t, models.RecontactoContactado, cliente.Estado)
		assert.Equal(t, 1, cliente.CantidadContactos)
	})

	t.Run("no_contesta es repetible", func(t *testing.T) {
		cliente := &models.ClienteRecontacto{Estado: models.RecontactoPendiente}

		require.NoError(t, AplicarResultadoContacto(cliente, ResultadoNoContesta))
		assert.Equal(t, models.RecontactoContactado, cliente.Estado)

		require.NoError(t, AplicarResultadoContacto(cliente, ResultadoNoContesta))
		assert.Equal(t, models.RecontactoContactado, cliente.Estado)
		assert.Equal(t, 2, cliente.CantidadContactos)
	})

	t.Run("estado terminal no admite mas contactos", func(t *testing.T) {
		for _, terminal := range []string{
			models.RecontactoRecuperado,
			models.RecontactoNoInteresado,
			models.RecontactoFallecido,
		} {
			cliente := &models.ClienteRecontacto{Estado: terminal, CantidadContactos: 3}
			err := AplicarResultadoContacto(cliente, ResultadoNoContesta)
			assert.Error(t, err)
			assert.Equal(t, terminal, cliente.Estado)
			assert.Equal(t, 3, cliente.CantidadContactos)
		}
	})

	t.Run("resultado desconocido", func(t *testing.T) {
		cliente := &models.ClienteRecontacto{Estado: models.RecontactoPendiente}
		err := AplicarResultadoContacto(cliente, "cualquier_cosa")
		assert.Error(t, err)
		assert.Equal(t, models.RecontactoPendiente, cliente.Estado)
	})

	t.Run("transiciones terminales", func(t *testing.T) {
		tests := []struct {
			resultado string
			estado    string
		}{
			{ResultadoNoInteresado, models.RecontactoNoInteresado},
			{ResultadoFallecido, models.RecontactoFallecido},
			{ResultadoNumeroErroneo, models.RecontactoContactado},
			{ResultadoSinDefinir, models.RecontactoContactado},
		}
		for _, tt := range tests {
			cliente := &models.ClienteRecontacto{Estado: models.RecontactoContactado}
			require.NoError(t, AplicarResultadoContacto(cliente, tt.resultado))
			assert.Equal(t, tt.estado, cliente.Estado)
		}
	})
}

func TestEsEstadoTerminal(t *testing.T) {
	assert.False(t, EsEstadoTerminal(models.RecontactoPendiente))
	assert.False(t, EsEstadoTerminal(models.RecontactoContactado))
	assert.True(t, EsEstadoTerminal(models.RecontactoRecuperado))
	assert.True(t, EsEstadoTerminal(models.RecontactoNoInteresado))
	assert.True(t, EsEstadoTerminal(models.RecontactoFallecido))
}
