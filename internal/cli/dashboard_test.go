package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzas/internal/api"
	"finanzas/internal/models"
)

func TestDashboard_ResumenAusenteUsaListasCargadas(t *testing.T) {
	records := &fakeRecords{
		listarFn: func(libro models.Libro, _ models.Filtros) ([]models.Registro, error) {
			if libro == models.LibroVentas {
				return []models.Registro{{ID: 1, Fecha: "2023-10-01", Categoria: "Producto A", Monto: 100.5}}, nil
			}
			return []models.Registro{{ID: 2, Fecha: "2023-10-01", Categoria: "Oficina", Monto: 50}}, nil
		},
		resumenFn: func() (*models.Resumen, error) {
			return nil, api.ErrResumenNoDisponible
		},
	}
	app, out := newTestApp(records)

	require.NoError(t, app.Dashboard(context.Background()))

	assert.Contains(t, out.String(), "Total Ventas: $100.50")
	assert.Contains(t, out.String(), "Total Gastos: $50.00")
	assert.Contains(t, out.String(), "Balance:      +$50.50")
}

func TestDashboard_ErrorDeResumenNoAusentePropaga(t *testing.T) {
	records := &fakeRecords{
		resumenFn: func() (*models.Resumen, error) {
			return nil, errors.New("No autorizado")
		},
	}
	app, out := newTestApp(records)
	stubConfirm(t, false)

	err := app.Dashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "No autorizado")
}

func TestDashboard_ReintentoRecargaTodo(t *testing.T) {
	intentos := 0
	records := &fakeRecords{
		lineChartFn: func() ([]models.PuntoGrafico, error) {
			intentos++
			if intentos == 1 {
				return nil, errors.New("servicio caído")
			}
			return []models.PuntoGrafico{{Period: "2023-10", TotalVentas: 10, TotalGastos: 4, Balance: 6}}, nil
		},
	}
	app, out := newTestApp(records)
	stubConfirm(t, true)

	require.NoError(t, app.Dashboard(context.Background()))
	assert.Equal(t, 2, intentos)
	assert.Contains(t, out.String(), "Tendencia Mensual")
	assert.Contains(t, out.String(), "2023-10")
}

func TestDashboard_LimpiaLaMarcaDePendiente(t *testing.T) {
	app, _ := newTestApp(&fakeRecords{})
	app.refresh.Bump()
	require.True(t, app.refresh.ChangedSince(app.vistoDashboard))

	require.NoError(t, app.Dashboard(context.Background()))
	assert.False(t, app.refresh.ChangedSince(app.vistoDashboard))
}

func TestDashboard_PideListasAcotadas(t *testing.T) {
	records := &fakeRecords{}
	app, _ := newTestApp(records)

	require.NoError(t, app.Dashboard(context.Background()))

	require.Len(t, records.listarLlamadas, 2)
	for _, ll := range records.listarLlamadas {
		assert.True(t, ll.filtros.Dashboard)
		assert.Equal(t, recientesMax, ll.filtros.Limite)
		assert.Equal(t, models.PeriodoMes, ll.filtros.Periodo)
	}
}
