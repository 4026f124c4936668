package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"finanzas/internal/logging"
	"finanzas/internal/models"
)

// FinanzasClient talks to the finance-records service: the two ledgers,
// the dashboard aggregates, and bulk import.
type FinanzasClient struct {
	c httpClient
}

func NewFinanzasClient(baseURL string, logger logging.Logger) *FinanzasClient {
	return &FinanzasClient{c: httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		logger:  logger.With("service", "finanzas"),
	}}
}

// singular maps a ledger to the noun used in error messages.
func singular(libro models.Libro) string {
	if libro == models.LibroVentas {
		return "venta"
	}
	return "gasto"
}

// Listar fetches one ledger's records with the criteria as query parameters.
func (f *FinanzasClient) Listar(ctx context.Context, token string, libro models.Libro, filtros models.Filtros) ([]models.Registro, error) {
	var out []models.Registro
	err := f.c.doJSON(ctx, http.MethodGet, "/"+string(libro), filtros.Query(), token, nil, &out,
		"Error al obtener "+string(libro))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Crear adds a record to a ledger; identity is server-assigned.
func (f *FinanzasClient) Crear(ctx context.Context, token string, libro models.Libro, r models.RegistroNuevo) (*models.Registro, error) {
	var out models.Registro
	err := f.c.doJSON(ctx, http.MethodPost, "/"+string(libro), nil, token, r, &out,
		"Error al crear "+singular(libro))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar replaces an existing record's editable fields.
func (f *FinanzasClient) Actualizar(ctx context.Context, token string, libro models.Libro, id int, r models.RegistroNuevo) (*models.Registro, error) {
	var out models.Registro
	err := f.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/%s/%d", libro, id), nil, token, r, &out,
		"Error al actualizar "+singular(libro))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar removes a record from a ledger.
func (f *FinanzasClient) Eliminar(ctx context.Context, token string, libro models.Libro, id int) error {
	return f.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", libro, id), nil, token, nil, nil,
		"Error al eliminar "+singular(libro))
}

// LineChart fetches the ordered trend points for a period granularity.
func (f *FinanzasClient) LineChart(ctx context.Context, token string, p models.Periodo) ([]models.PuntoGrafico, error) {
	q := url.Values{"period": {string(p)}}
	var out []models.PuntoGrafico
	err := f.c.doJSON(ctx, http.MethodGet, "/dashboard/line-chart", q, token, nil, &out,
		"Error al obtener datos del dashboard")
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Resumen fetches the server-computed aggregate. A 404 means the endpoint is
// not implemented and comes back as ErrResumenNoDisponible, which callers
// treat as expected rather than fatal.
func (f *FinanzasClient) Resumen(ctx context.Context, token string, p models.Periodo) (*models.Resumen, error) {
	q := url.Values{"period": {string(p)}}
	var out models.Resumen
	err := f.c.doJSON(ctx, http.MethodGet, "/dashboard/summary", q, token, nil, &out,
		"Error al obtener resumen del dashboard")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrResumenNoDisponible
		}
		return nil, err
	}
	return &out, nil
}

// Importar submits a bulk payload and returns the server confirmation message.
func (f *FinanzasClient) Importar(ctx context.Context, token string, p *models.ImportPayload) (string, error) {
	var out serverMessage
	err := f.c.doJSON(ctx, http.MethodPost, "/import-json", nil, token, p, &out,
		"Error al importar datos")
	if err != nil {
		return "", err
	}
	return out.Message, nil
}
