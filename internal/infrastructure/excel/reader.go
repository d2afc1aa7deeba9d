package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadRows devuelve las filas de la primera hoja (incluido el encabezado).
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: abrir: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("excel: leer filas: %w", err)
	}
	return rows, nil
}
