package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestReadLatin1CSV_DecodificaAcentos(t *testing.T) {
	data := latin1(t, "sku;nombre;categoria;uom;precio;stock_minimo\nSKU1;Calugas de leche;Caramelos;un;1.290,5;10\n")
	rows, err := readLatin1CSV(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Caramelos", rows[1][2])

	rows, err = readLatin1CSV(bytes.NewReader(latin1(t, "sku;nombre\nSKU2;Bombón\n")))
	require.NoError(t, err)
	assert.Equal(t, "Bombón", rows[1][1])
}

func TestHeaderIndex_FaltanColumnas(t *testing.T) {
	_, err := headerIndex([]string{"SKU", "Nombre"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoria")

	idx, err := headerIndex([]string{"stock_minimo", " SKU ", "nombre", "categoria", "UOM", "precio"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx["sku"])
}

func TestToRequest(t *testing.T) {
	idx, err := headerIndex(columns)
	require.NoError(t, err)

	in, err := toRequest(idx, []string{"sku9", "Gomitas", "Dulces", "kg", "2500,50", ""})
	require.NoError(t, err)
	assert.Equal(t, "KG", in.UOMPurchase)
	assert.Equal(t, "KG", in.UOMSale)
	assert.Equal(t, "2500.5", in.SalePrice.String())
	assert.True(t, in.MinStock.IsZero())
	assert.Equal(t, "19", in.TaxRate.String())

	_, err = toRequest(idx, []string{"sku9", "Gomitas", "Dulces", "UN", "abc", "1"})
	assert.ErrorContains(t, err, "precio")

	// Fila corta: columnas faltantes quedan vacías.
	in, err = toRequest(idx, []string{"sku10", "Chicle"})
	require.NoError(t, err)
	assert.Empty(t, in.Category)
}
