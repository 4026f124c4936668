package cli

import (
	"fmt"
	"time"

	"finanzas/internal/models"
)

// formRegistro collects the fields of a record interactively. When prev is
// non-nil its values become the defaults (edit mode); otherwise the date
// defaults to today. Typing "cancelar" at any prompt abandons the form and
// returns a nil record without error.
func (a *App) formRegistro(prev *models.Registro) (*models.RegistroNuevo, error) {
	fmt.Fprintln(a.out, "(escribe 'cancelar' para salir del formulario)")

	fechaDefault := time.Now().Format("2006-01-02")
	categoriaDefault := ""
	montoDefault := ""
	descDefault := ""
	if prev != nil {
		fechaDefault = soloFecha(prev.Fecha)
		categoriaDefault = prev.Categoria
		montoDefault = fmt.Sprintf("%.2f", prev.Monto)
		descDefault = prev.Descripcion
	}

	var r models.RegistroNuevo

	for {
		v, err := getSimpleText(a.reader, fmt.Sprintf("Fecha (YYYY-MM-DD) [%s]", fechaDefault), a.out)
		if err != nil {
			return nil, err
		}
		if esCancelar(v) {
			return a.formCancelado()
		}
		if v == "" {
			v = fechaDefault
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			fmt.Fprintln(a.out, "Fecha inválida, usa el formato YYYY-MM-DD")
			continue
		}
		r.Fecha = v
		break
	}

	for {
		v, err := getSimpleText(a.reader, etiquetaConDefault("Categoría", categoriaDefault), a.out)
		if err != nil {
			return nil, err
		}
		if esCancelar(v) {
			return a.formCancelado()
		}
		if v == "" {
			v = categoriaDefault
		}
		if v == "" {
			fmt.Fprintln(a.out, "La categoría es obligatoria")
			continue
		}
		r.Categoria = v
		break
	}

	for {
		v, err := getSimpleText(a.reader, etiquetaConDefault("Monto", montoDefault), a.out)
		if err != nil {
			return nil, err
		}
		if esCancelar(v) {
			return a.formCancelado()
		}
		if v == "" && prev != nil {
			r.Monto = prev.Monto
			break
		}
		monto, err := models.ParseMonto(v)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			continue
		}
		r.Monto = monto
		break
	}

	v, err := getSimpleText(a.reader, etiquetaConDefault("Descripción (opcional)", descDefault), a.out)
	if err != nil {
		return nil, err
	}
	if esCancelar(v) {
		return a.formCancelado()
	}
	if v == "" {
		v = descDefault
	}
	r.Descripcion = v

	return &r, nil
}

func (a *App) formCancelado() (*models.RegistroNuevo, error) {
	fmt.Fprintln(a.out, "Formulario cancelado")
	return nil, nil
}

func esCancelar(v string) bool {
	return v == "cancelar"
}

func etiquetaConDefault(etiqueta, def string) string {
	if def == "" {
		return etiqueta
	}
	return fmt.Sprintf("%s [%s]", etiqueta, def)
}

// soloFecha reduces a server timestamp to its date part for a form default.
func soloFecha(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
