package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"finanzas/internal/models"
)

// Importar runs the bulk-import flow: the JSON arrives from a file path or
// pasted into the terminal, is validated locally, and only then submitted.
// Invalid payloads never reach the service.
func (a *App) Importar(ctx context.Context) error {
	fmt.Fprintln(a.out, "Importación de datos JSON")
	fmt.Fprintln(a.out, "El objeto debe contener 'ventas' y/o 'gastos' como arrays de registros.")

	ruta, err := getSimpleText(a.reader, "Ruta del archivo JSON (vacío para pegarlo, 'ejemplo' para ver una muestra)", a.out)
	if err != nil {
		return err
	}

	var data []byte
	switch ruta {
	case "ejemplo":
		muestra, _ := json.MarshalIndent(models.EjemploImport(), "", "  ")
		fmt.Fprintln(a.out, string(muestra))
		return nil
	case "":
		texto, err := getMultiline(a.reader, "Pega el JSON", a.out)
		if err != nil {
			return err
		}
		data = []byte(texto)
	default:
		data, err = os.ReadFile(ruta)
		if err != nil {
			fmt.Fprintf(a.out, "Error: no se pudo leer el archivo: %v\n", err)
			return err
		}
	}

	if len(data) == 0 {
		fmt.Fprintln(a.out, "Por favor ingresa datos JSON válidos")
		return nil
	}

	payload, err := models.ParseImport(data)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	msg, err := a.records.Importar(ctx, a.session.Token(), payload)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	if msg == "" {
		msg = "Datos importados exitosamente"
	}
	fmt.Fprintln(a.out, msg)
	a.refresh.Bump()
	return nil
}
