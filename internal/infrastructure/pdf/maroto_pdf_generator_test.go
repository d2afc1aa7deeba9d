package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/pdf"
)

func TestGenerateMovementPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("http://localhost:8080")
	m := &entity.Movement{
		ID: "3f2c9a1e-0000-4000-8000-000000000001", Type: entity.MovementAjuste, AdjustmentDirection: entity.AdjustmentDecrease,
		ProductName: "Chocolate", ProductSKU: "SKU001", Quantity: decimal.NewFromInt(4),
		OriginCode: "B01", OriginName: "Central", CreatedAt: time.Now(),
	}
	out, err := g.GenerateMovementPDF(context.Background(), m)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateReplenishmentPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")
	items := []dto.ReplenishmentSuggestionDTO{{
		Priority: 1, SKU: "SKU001", ProductName: "Chocolate", CurrentStock: decimal.NewFromInt(2),
		Threshold: decimal.NewFromInt(10), SuggestedOrderQty: decimal.NewFromInt(13),
		EstimatedOrderCost: decimal.NewFromInt(26000),
	}}
	out, err := g.GenerateReplenishmentPDF(context.Background(), items, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := g.GenerateReplenishmentPDF(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
