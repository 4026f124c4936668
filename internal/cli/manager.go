package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"finanzas/internal/models"
)

// Ledger switches the active ledger and reloads its list in full.
func (a *App) Ledger(ctx context.Context, libro models.Libro) error {
	a.libro = libro
	return a.cargarLista(ctx)
}

// cargarLista fetches the active ledger with the current criteria and
// replaces the rendered list. Always a full reload, never a patch.
func (a *App) cargarLista(ctx context.Context) error {
	regs, err := a.records.Listar(ctx, a.session.Token(), a.libro, a.filtros)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	a.registros = regs
	a.renderLista()
	return nil
}

func (a *App) renderLista() {
	fmt.Fprintf(a.out, "\nGestión de %s (período: %s)\n", tituloLibro(a.libro), a.filtros.Periodo)
	if len(a.registros) == 0 {
		if a.libro == models.LibroVentas {
			fmt.Fprintln(a.out, "No hay ventas registradas")
		} else {
			fmt.Fprintln(a.out, "No hay gastos registrados")
		}
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFecha\tCategoría\tDescripción\tMonto")
	for _, r := range a.registros {
		desc := r.Descripcion
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, formatFecha(r.Fecha), r.Categoria, desc, formatMonto(r.Monto))
	}
	w.Flush()
}

func tituloLibro(libro models.Libro) string {
	if libro == models.LibroVentas {
		return "Ventas"
	}
	return "Gastos"
}

// Filtro edits the list criteria and triggers exactly one reload. Empty
// input keeps the current value; "-" clears an optional field.
func (a *App) Filtro(ctx context.Context) error {
	p, err := getSimpleText(a.reader, fmt.Sprintf("Período (day/week/month/year) [%s]", a.filtros.Periodo), a.out)
	if err != nil {
		return err
	}
	if p != "" {
		periodo := models.Periodo(p)
		if !periodo.Valida() {
			fmt.Fprintln(a.out, "Período inválido: debe ser day, week, month o year")
			return nil
		}
		a.filtros.Periodo = periodo
	}

	if a.filtros.Categoria, err = a.filtroOpcional("Categoría", a.filtros.Categoria); err != nil {
		return err
	}
	if a.filtros.Desde, err = a.filtroOpcional("Desde (YYYY-MM-DD)", a.filtros.Desde); err != nil {
		return err
	}
	if a.filtros.Hasta, err = a.filtroOpcional("Hasta (YYYY-MM-DD)", a.filtros.Hasta); err != nil {
		return err
	}

	return a.cargarLista(ctx)
}

func (a *App) filtroOpcional(etiqueta, actual string) (string, error) {
	mostrado := actual
	if mostrado == "" {
		mostrado = "sin filtro"
	}
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s, '-' para quitar]", etiqueta, mostrado), a.out)
	if err != nil {
		return actual, err
	}
	switch v {
	case "":
		return actual, nil
	case "-":
		return "", nil
	}
	return v, nil
}

// Nuevo opens a blank form for the active ledger.
func (a *App) Nuevo(ctx context.Context) error {
	r, err := a.formRegistro(nil)
	if err != nil || r == nil {
		return err
	}
	return a.enviarForm(ctx, func(ctx context.Context) error {
		_, err := a.records.Crear(ctx, a.session.Token(), a.libro, *r)
		return err
	})
}

// Editar opens the form pre-filled with a record from the rendered list.
func (a *App) Editar(ctx context.Context, idArg string) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "ID inválido:", idArg)
		return nil
	}

	previo := a.buscarRegistro(id)
	if previo == nil {
		fmt.Fprintf(a.out, "El registro %d no está en la lista actual; ejecuta 'ventas' o 'gastos' primero\n", id)
		return nil
	}

	r, err := a.formRegistro(previo)
	if err != nil || r == nil {
		return err
	}
	return a.enviarForm(ctx, func(ctx context.Context) error {
		_, err := a.records.Actualizar(ctx, a.session.Token(), a.libro, id, *r)
		return err
	})
}

// Eliminar asks for confirmation, deletes the record, removes the row from
// the rendered list immediately (an optimistic update) and signals refresh
// so other views reconcile on their next fetch.
func (a *App) Eliminar(ctx context.Context, idArg string) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "ID inválido:", idArg)
		return nil
	}

	ok, err := getConfirm(a.reader, "¿Estás seguro de que quieres eliminar este registro?", a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.records.Eliminar(ctx, a.session.Token(), a.libro, id); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	a.quitarRegistro(id)
	a.refresh.Bump()
	fmt.Fprintln(a.out, "Registro eliminado")
	return nil
}

// enviarForm runs the submit loop: on failure the form stays open with an
// inline error and the user may retry the same payload; on success the
// active list is reloaded and refresh is signaled.
func (a *App) enviarForm(ctx context.Context, enviar func(context.Context) error) error {
	for {
		err := enviar(ctx)
		if err == nil {
			break
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		retry, cerr := getConfirm(a.reader, "¿Reintentar el envío?", a.out)
		if cerr != nil || !retry {
			return err
		}
	}

	if err := a.cargarLista(ctx); err != nil {
		return err
	}
	a.refresh.Bump()
	return nil
}

func (a *App) buscarRegistro(id int) *models.Registro {
	for i := range a.registros {
		if a.registros[i].ID == id {
			return &a.registros[i]
		}
	}
	return nil
}

func (a *App) quitarRegistro(id int) {
	filtrados := a.registros[:0]
	for _, r := range a.registros {
		if r.ID != id {
			filtrados = append(filtrados, r)
		}
	}
	a.registros = filtrados
}
