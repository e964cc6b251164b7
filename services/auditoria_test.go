package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"mi-sucursal/models"
)

func TestPorcentajePendientes(t *testing.T) {
	tests := []struct {
		name       string
		pendientes int
		total      int
		want       int
	}{
		{"sin tareas", 0, 0, 0},
		{"todo pendiente", 10, 10, 100},
		{"nada pendiente", 0, 10, 0},
		{"redondeo hacia arriba", 1, 3, 33},
		{"redondeo al medio", 1, 2, 50},
		{"dos tercios", 2, 3, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PorcentajePendientes(tt.pendientes, tt.total)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestTareasVencidasAuditoria(t *testing.T) {
	ahora := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

	tarea := func(id uint, diasAtras int, estado string) models.TareaSucursal {
		return models.TareaSucursal{
			Model:           gorm.Model{ID: id},
			Titulo:          "limpieza de gondolas",
			Categoria:       models.CategoriaOrdenLimpieza,
			Estado:          estado,
			FechaAsignacion: ahora.AddDate(0, 0, -diasAtras),
		}
	}

	tareas := []models.TareaSucursal{
		tarea(1, 8, models.TareaPendiente),
		tarea(2, 3, models.TareaPendiente),
		tarea(3, 10, models.TareaCompletada),
		tarea(4, 6, models.TareaEnProgreso),
		tarea(5, 5, models.TareaPendiente),
	}

	vencidas := TareasVencidasAuditoria(tareas, ahora)

	assert.Len(t, vencidas, 2)
	assert.Equal(t, uint(1), vencidas[0].TareaID)
	assert.Equal(t, 8, vencidas[0].DiasSinCompletar)
	assert.Equal(t, uint(4), vencidas[1].TareaID)
	assert.Equal(t, 6, vencidas[1].DiasSinCompletar)
}

func TestIndicadorClub(t *testing.T) {
	ind := IndicadorClub(342, 503, 30)

	assert.Equal(t, float64(68), ind.Porcentaje)
	assert.NotNil(t, ind.CumpleMeta)
	assert.False(t, *ind.CumpleMeta)
	assert.Equal(t, SeveridadCritico, ind.Severidad)
}

func TestIndicadorClubCumpleMeta(t *testing.T) {
	ind := IndicadorClub(25, 100, 30)

	assert.Equal(t, float64(25), ind.Porcentaje)
	assert.True(t, *ind.CumpleMeta)
	assert.Equal(t, SeveridadOK, ind.Severidad)
}

func TestIndicadorClubSinFacturas(t *testing.T) {
	ind := IndicadorClub(0, 0, 30)

	assert.Equal(t, float64(0), ind.Porcentaje)
	assert.True(t, *ind.CumpleMeta)
}

func TestSeveridades(t *testing.T) {
	assert.Equal(t, SeveridadOK, SeveridadOrden(20))
	assert.Equal(t, SeveridadAlerta, SeveridadOrden(21))
	assert.Equal(t, SeveridadAlerta, SeveridadOrden(50))
	assert.Equal(t, SeveridadCritico, SeveridadOrden(51))

	assert.Equal(t, SeveridadOK, SeveridadPedidos(5))
	assert.Equal(t, SeveridadAlerta, SeveridadPedidos(15))
	assert.Equal(t, SeveridadCritico, SeveridadPedidos(16))

	assert.Equal(t, SeveridadOK, SeveridadGastos(10))
	assert.Equal(t, SeveridadAlerta, SeveridadGastos(12))
	assert.Equal(t, SeveridadCritico, SeveridadGastos(20))

	assert.Equal(t, SeveridadOK, SeveridadClub(30, 30))
	assert.Equal(t, SeveridadAlerta, SeveridadClub(40, 30))
	assert.Equal(t, SeveridadCritico, SeveridadClub(41, 30))

	assert.Equal(t, SeveridadOK, SeveridadCaja(0))
	assert.Equal(t, SeveridadAlerta, SeveridadCaja(1000))
	assert.Equal(t, SeveridadAlerta, SeveridadCaja(-900))
	assert.Equal(t, SeveridadCritico, SeveridadCaja(-1500))
}

func TestRatioGastos(t *testing.T) {
	assert.Equal(t, 12.5, RatioGastos(125000, 1000000))
	assert.Equal(t, 0.0, RatioGastos(100, 0))
}

func TestPuntajeTotal(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	completa := models.AuditoriaMensual{
		OrdenLimpieza:         f(80),
		Pedidos:               f(90),
		GestionAdministrativa: f(70),
		ClubMascotera:         f(60),
		ControlStockCaja:      f(100),
	}
	total := PuntajeTotal(&completa)
	assert.NotNil(t, total)
	assert.Equal(t, 80.0, *total)

	parcial := models.AuditoriaMensual{
		OrdenLimpieza: f(90),
		Pedidos:       f(70),
	}
	total = PuntajeTotal(&parcial)
	assert.NotNil(t, total)
	assert.Equal(t, 80.0, *total)

	vacia := models.AuditoriaMensual{}
	assert.Nil(t, PuntajeTotal(&vacia))
}

func TestIndicadorSinDatos(t *testing.T) {
	ind := IndicadorSinDatos("gastos")

	assert.Equal(t, "gastos", ind.Nombre)
	assert.True(t, ind.SinDatos)
	assert.Zero(t, ind.Porcentaje)
	assert.Equal(t, SeveridadOK, ind.Severidad)

	medido := IndicadorClub(342, 503, 30)
	assert.False(t, medido.SinDatos)
}
