// Package excel serializa headers + filas en un workbook xlsx en memoria.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// textNumFmt es el formato de número "@" (texto plano). Todas las celdas lo
// llevan para que el lector de planillas no reinterprete valores numéricos:
// sin ceros a la izquierda perdidos, sin separador decimal localizado.
const textNumFmt = 49

// Write arma un workbook con una fila de headers y una fila por cada mapa
// de rows, tomando de cada mapa el valor por header (vacío si falta, así las
// filas nunca quedan ralas). Devuelve el documento en memoria.
func Write(sheetName string, headers []string, rows []map[string]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("error renaming sheet: %w", err)
	}

	styleID, err := f.NewStyle(&excelize.Style{NumFmt: textNumFmt})
	if err != nil {
		return nil, fmt.Errorf("error creating text style: %w", err)
	}
	if err := f.SetColStyle(sheetName, "A:XFD", styleID); err != nil {
		return nil, fmt.Errorf("error applying text style: %w", err)
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("error writing header row: %w", err)
	}

	for i, row := range rows {
		values := make([]any, len(headers))
		for j, h := range headers {
			values[j] = row[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}
