package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/excel"
)

// Columnas obligatorias del archivo de catálogo.
var columns = []string{"sku", "nombre", "categoria", "uom", "precio", "stock_minimo"}

var (
	defaultConversion = decimal.NewFromInt(1)
	defaultTaxRate    = decimal.NewFromInt(19)
)

// readRows lee .xlsx con excelize o CSV separado por ";" en ISO-8859-1.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return excel.ReadRows(f)
	}
	return readLatin1CSV(f)
}

func readLatin1CSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return rows, nil
}

// headerIndex ubica cada columna por nombre (sin distinguir mayúsculas).
func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("faltan columnas: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// toRequest arma la solicitud de producto de una fila. Los números aceptan coma decimal.
func toRequest(idx map[string]int, row []string) (dto.ProductRequest, error) {
	get := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	price, err := parseNumber(get("precio"))
	if err != nil {
		return dto.ProductRequest{}, fmt.Errorf("precio: %w", err)
	}
	minStock, err := parseNumber(get("stock_minimo"))
	if err != nil {
		return dto.ProductRequest{}, fmt.Errorf("stock_minimo: %w", err)
	}
	uom := strings.ToUpper(get("uom"))
	return dto.ProductRequest{
		SKU:              get("sku"),
		Name:             get("nombre"),
		Category:         get("categoria"),
		UOMPurchase:      uom,
		UOMSale:          uom,
		ConversionFactor: defaultConversion,
		SalePrice:        price,
		TaxRate:          defaultTaxRate,
		MinStock:         minStock,
	}, nil
}

func parseNumber(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}
