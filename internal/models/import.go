package models

import (
	"encoding/json"
	"errors"
)

var (
	ErrImportVacio     = errors.New("el JSON debe contener 'ventas' o 'gastos'")
	ErrImportJSON      = errors.New("JSON inválido")
	ErrVentasNoEsArray = errors.New("'ventas' debe ser un array")
	ErrGastosNoEsArray = errors.New("'gastos' debe ser un array")
)

// ImportPayload is the bulk-import body. Either key may be absent; a present
// key must hold an array. Deeper validation (field types, required fields)
// is the server's job and its rejection surfaces verbatim.
type ImportPayload struct {
	Ventas json.RawMessage `json:"ventas,omitempty"`
	Gastos json.RawMessage `json:"gastos,omitempty"`
}

// ParseImport validates raw JSON locally before any network call: the
// payload must parse, carry at least one of the two ledger keys, and each
// present key must be an array.
func ParseImport(data []byte) (*ImportPayload, error) {
	var p ImportPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, ErrImportJSON
	}
	if p.Ventas == nil && p.Gastos == nil {
		return nil, ErrImportVacio
	}
	if p.Ventas != nil && !esArray(p.Ventas) {
		return nil, ErrVentasNoEsArray
	}
	if p.Gastos != nil && !esArray(p.Gastos) {
		return nil, ErrGastosNoEsArray
	}
	return &p, nil
}

func esArray(raw json.RawMessage) bool {
	var arr []json.RawMessage
	return json.Unmarshal(raw, &arr) == nil
}

// EjemploImport is a ready-to-submit sample payload shown by the import view.
func EjemploImport() ImportPayload {
	ventas, _ := json.Marshal([]RegistroNuevo{
		{Fecha: "2023-10-01", Categoria: "Producto A", Monto: 100.5, Descripcion: "Venta importada"},
		{Fecha: "2023-10-02", Categoria: "Producto B", Monto: 250.0, Descripcion: "Venta mayor"},
	})
	gastos, _ := json.Marshal([]RegistroNuevo{
		{Fecha: "2023-10-01", Categoria: "Oficina", Monto: 50.0, Descripcion: "Gasto en oficina"},
		{Fecha: "2023-10-02", Categoria: "Transporte", Monto: 30.0, Descripcion: "Taxi"},
	})
	return ImportPayload{Ventas: ventas, Gastos: gastos}
}
