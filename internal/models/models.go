// Package models defines the wire types shared with the auth and finance
// services, plus the local parsing/validation helpers the views rely on.
package models

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Usuario is the identity returned by the auth service.
type Usuario struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// NuevoUsuario is the account-creation payload.
type NuevoUsuario struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// Libro selects one of the two ledgers. Ventas and gastos share the same
// record shape; the ledger they live in is what distinguishes them.
type Libro string

const (
	LibroVentas Libro = "ventas"
	LibroGastos Libro = "gastos"
)

// Registro is a single sale or expense as returned by the records service.
// Identity and timestamps are server-assigned.
type Registro struct {
	ID          int     `json:"id"`
	Fecha       string  `json:"fecha"`
	Categoria   string  `json:"categoria"`
	Monto       float64 `json:"monto"`
	Descripcion string  `json:"descripcion"`
	UserID      int     `json:"user_id"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// RegistroNuevo is the create/update payload for either ledger.
type RegistroNuevo struct {
	Fecha       string  `json:"fecha"`
	Categoria   string  `json:"categoria"`
	Monto       float64 `json:"monto"`
	Descripcion string  `json:"descripcion"`
}

// PuntoGrafico is one point of the server-aggregated trend chart.
type PuntoGrafico struct {
	Period      string  `json:"period"`
	TotalVentas float64 `json:"total_ventas"`
	TotalGastos float64 `json:"total_gastos"`
	Balance     float64 `json:"balance"`
}

// Resumen is the dashboard aggregate for a period.
type Resumen struct {
	TotalVentas float64 `json:"total_ventas"`
	TotalGastos float64 `json:"total_gastos"`
	Balance     float64 `json:"balance"`
	CountVentas int     `json:"count_ventas"`
	CountGastos int     `json:"count_gastos"`
	Period      string  `json:"period"`
}

// Periodo is the aggregation granularity accepted by the records service.
type Periodo string

const (
	PeriodoDia    Periodo = "day"
	PeriodoSemana Periodo = "week"
	PeriodoMes    Periodo = "month"
	PeriodoAnio   Periodo = "year"
)

func (p Periodo) Valida() bool {
	switch p {
	case PeriodoDia, PeriodoSemana, PeriodoMes, PeriodoAnio:
		return true
	}
	return false
}

// Filtros are the list query criteria. A zero field is omitted from the
// query string; changing any field only ever results in a new fetch.
type Filtros struct {
	Periodo   Periodo
	Desde     string // start_date, YYYY-MM-DD
	Hasta     string // end_date, YYYY-MM-DD
	Categoria string
	Dashboard bool
	Limite    int
}

// Query serializes the criteria as records-service query parameters.
func (f Filtros) Query() url.Values {
	q := url.Values{}
	if f.Periodo != "" {
		q.Set("period", string(f.Periodo))
	}
	if f.Desde != "" {
		q.Set("start_date", f.Desde)
	}
	if f.Hasta != "" {
		q.Set("end_date", f.Hasta)
	}
	if f.Categoria != "" {
		q.Set("categoria", f.Categoria)
	}
	if f.Dashboard {
		q.Set("dashboard", "true")
	}
	if f.Limite > 0 {
		q.Set("limit", strconv.Itoa(f.Limite))
	}
	return q
}

var (
	ErrMontoInvalido = errors.New("el monto debe ser un número válido")
	ErrMontoNegativo = errors.New("el monto debe ser un número positivo")
)

// ParseMonto validates a user-entered amount. The value must parse as a
// finite, non-negative decimal before it is ever submitted.
func ParseMonto(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrMontoInvalido
	}
	if d.IsNegative() {
		return 0, ErrMontoNegativo
	}
	f, _ := d.Float64()
	return f, nil
}

// ResumenCalculado aggregates the currently loaded lists client-side. It is
// the fallback used when the summary endpoint is not implemented, so the
// displayed totals come from exactly the records on screen. Sums go through
// decimal to keep cents exact.
func ResumenCalculado(ventas, gastos []Registro, p Periodo) Resumen {
	totalVentas := decimal.Zero
	for _, v := range ventas {
		totalVentas = totalVentas.Add(decimal.NewFromFloat(v.Monto))
	}
	totalGastos := decimal.Zero
	for _, g := range gastos {
		totalGastos = totalGastos.Add(decimal.NewFromFloat(g.Monto))
	}
	tv, _ := totalVentas.Float64()
	tg, _ := totalGastos.Float64()
	b, _ := totalVentas.Sub(totalGastos).Float64()
	return Resumen{
		TotalVentas: tv,
		TotalGastos: tg,
		Balance:     b,
		CountVentas: len(ventas),
		CountGastos: len(gastos),
		Period:      string(p),
	}
}
