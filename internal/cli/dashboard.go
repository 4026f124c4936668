package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"finanzas/internal/api"
	"finanzas/internal/models"
)

// recientesMax bounds the recent-activity tables.
const recientesMax = 5

// Dashboard loads and renders the aggregate view. Any non-summary failure
// replaces the view with an error panel offering a manual retry that
// re-runs the whole load sequence.
func (a *App) Dashboard(ctx context.Context) error {
	for {
		err := a.loadDashboard(ctx)
		if err == nil {
			return nil
		}

		fmt.Fprintf(a.out, "Error: %v\n", err)
		retry, cerr := getConfirm(a.reader, "¿Reintentar?", a.out)
		if cerr != nil || !retry {
			return err
		}
	}
}

// loadDashboard issues the three initial requests concurrently, waits for
// all of them, and only then asks for the server summary, tolerating its
// absence by aggregating the loaded lists client-side.
func (a *App) loadDashboard(ctx context.Context) error {
	token := a.session.Token()
	pagina := models.Filtros{Periodo: models.PeriodoMes, Dashboard: true, Limite: recientesMax}

	var (
		puntos []models.PuntoGrafico
		ventas []models.Registro
		gastos []models.Registro
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		puntos, err = a.records.LineChart(gctx, token, models.PeriodoMes)
		return err
	})
	g.Go(func() error {
		var err error
		ventas, err = a.records.Listar(gctx, token, models.LibroVentas, pagina)
		return err
	})
	g.Go(func() error {
		var err error
		gastos, err = a.records.Listar(gctx, token, models.LibroGastos, pagina)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	resumen, err := a.records.Resumen(ctx, token, models.PeriodoMes)
	if err != nil {
		if !errors.Is(err, api.ErrResumenNoDisponible) {
			return err
		}
		a.logger.Info(ctx, "resumen no implementado, usando las listas cargadas")
		calc := models.ResumenCalculado(ventas, gastos, models.PeriodoMes)
		resumen = &calc
	}

	a.renderDashboard(puntos, ventas, gastos, resumen)
	a.vistoDashboard = a.refresh.Value()
	return nil
}

func (a *App) renderDashboard(puntos []models.PuntoGrafico, ventas, gastos []models.Registro, r *models.Resumen) {
	fmt.Fprintf(a.out, "\nTotal Ventas: %s (este mes, %d registros)\n", formatMonto(r.TotalVentas), r.CountVentas)
	fmt.Fprintf(a.out, "Total Gastos: %s (este mes, %d registros)\n", formatMonto(r.TotalGastos), r.CountGastos)
	fmt.Fprintf(a.out, "Balance:      %s\n", formatBalance(r.Balance))

	fmt.Fprintln(a.out, "\nTendencia Mensual")
	if len(puntos) == 0 {
		fmt.Fprintln(a.out, "Sin datos para graficar")
	} else {
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Período\tVentas\tGastos\tBalance")
		for _, p := range puntos {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				formatFecha(p.Period), formatMonto(p.TotalVentas), formatMonto(p.TotalGastos), formatBalance(p.Balance))
		}
		w.Flush()
	}

	a.renderRecientes("Últimas Ventas", "No hay ventas registradas este mes", ventas)
	a.renderRecientes("Últimos Gastos", "No hay gastos registrados este mes", gastos)
	fmt.Fprintln(a.out)
}

func (a *App) renderRecientes(titulo, vacio string, regs []models.Registro) {
	fmt.Fprintf(a.out, "\n%s\n", titulo)
	if len(regs) == 0 {
		fmt.Fprintln(a.out, vacio)
		return
	}
	if len(regs) > recientesMax {
		regs = regs[:recientesMax]
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Fecha\tCategoría\tMonto")
	for _, r := range regs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", formatFecha(r.Fecha), r.Categoria, formatMonto(r.Monto))
	}
	w.Flush()
}
