package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/excel"
)

func TestWriter_RoundTripConReadRows(t *testing.T) {
	tbl := export.Table{
		Sheet:   "productos",
		Headers: []string{"SKU", "Nombre", "Stock actual"},
		Rows: [][]any{
			{"SKU001", "Chocolate", 12.5},
			{"SKU002", "Calugas", 0.0},
		},
	}
	w := excel.NewWriter()
	var buf bytes.Buffer
	require.NoError(t, w.Write(context.Background(), &buf, tbl))
	assert.Equal(t, "xlsx", w.Extension())

	rows, err := excel.ReadRows(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"SKU", "Nombre", "Stock actual"}, rows[0])
	assert.Equal(t, "SKU001", rows[1][0])
	assert.Equal(t, "12.5", rows[1][2])
}
