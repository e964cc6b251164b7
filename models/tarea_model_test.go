package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTareaVencida(t *testing.T) {
	hoy := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		estado      string
		vencimiento time.Time
		want        bool
	}{
		{"pendiente y vencida", TareaPendiente, hoy.AddDate(0, 0, -2), true},
		{"en progreso y vencida", TareaEnProgreso, hoy.AddDate(0, 0, -1), true},
		{"completada y vencida", TareaCompletada, hoy.AddDate(0, 0, -2), false},
		{"pendiente con plazo", TareaPendiente, hoy.AddDate(0, 0, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tarea := TareaSucursal{Estado: tt.estado, FechaVencimiento: tt.vencimiento}
			assert.Equal(t, tt.want, tarea.Vencida(hoy))
		})
	}
}
