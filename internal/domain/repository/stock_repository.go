package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// StockRepository puerto para el stock por bodega.
type StockRepository interface {
	// Add suma delta al stock del producto en la bodega (crea la fila si no existe).
	Add(ctx context.Context, productID, warehouseID string, delta decimal.Decimal) (decimal.Decimal, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Stock, error)
}
