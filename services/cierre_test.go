package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mi-sucursal/models"
)

func TestConciliarCierre(t *testing.T) {
	tests := []struct {
		name       string
		declarado  int64
		sistema    int64
		diferencia int64
		estado     string
	}{
		{"exacto", 150000, 150000, 0, models.CierreConciliado},
		{"sobrante", 150000, 151500, 1500, models.CierreConDiferencia},
		{"faltante", 150000, 148000, -2000, models.CierreConDiferencia},
		{"declarado cero", 0, 500, 500, models.CierreConDiferencia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cierre := &models.CierreCaja{
				MontoDeclarado: tt.declarado,
				Estado:         models.CierreDeclarado,
			}
			ConciliarCierre(cierre, tt.sistema)

			require.NotNil(t, cierre.MontoSistema)
			require.NotNil(t, cierre.Diferencia)
			assert.Equal(t, tt.sistema, *cierre.MontoSistema)
			assert.Equal(t, tt.diferencia, *cierre.Diferencia)
			assert.Equal(t, tt.estado, cierre.Estado)
		})
	}
}

func TestDiasSinCierre(t *testing.T) {
	hoy := time.Date(2025, 6, 20, 15, 30, 0, 0, time.UTC)

	cierre := func(diasAtras int) models.CierreCaja {
		return models.CierreCaja{FechaCaja: hoy.AddDate(0, 0, -diasAtras)}
	}

	t.Run("todos declarados", func(t *testing.T) {
		cierres := []models.CierreCaja{
			cierre(1), cierre(2), cierre(3), cierre(4), cierre(5), cierre(6), cierre(7),
		}
		assert.Empty(t, DiasSinCierre(cierres, hoy))
	})

	t.Run("faltan dos dias", func(t *testing.T) {
		cierres := []models.CierreCaja{
			cierre(1), cierre(2), cierre(4), cierre(6), cierre(7),
		}
		faltantes := DiasSinCierre(cierres, hoy)
		require.Len(t, faltantes, 2)
		assert.Equal(t, hoy.AddDate(0, 0, -5).Format("2006-01-02"), faltantes[0].Format("2006-01-02"))
		assert.Equal(t, hoy.AddDate(0, 0, -3).Format("2006-01-02"), faltantes[1].Format("2006-01-02"))
	})

	t.Run("sin cierres", func(t *testing.T) {
		faltantes := DiasSinCierre(nil, hoy)
		assert.Len(t, faltantes, 7)
	})
}
