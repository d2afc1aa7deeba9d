package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementTypeTotal cantidad de movimientos y unidades de un tipo en un período.
type MovementTypeTotal struct {
	Type     string
	Count    int
	Quantity decimal.Decimal
}

// ProductActivity movimiento acumulado de un producto en un período.
type ProductActivity struct {
	ProductID   string
	SKU         string
	ProductName string
	Movements   int
	Units       decimal.Decimal // suma sin signo
	Net         decimal.Decimal // suma con signo
}

// StockValuation valor del inventario a costo promedio.
type StockValuation struct {
	Products   int
	Units      decimal.Decimal
	TotalValue decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre el libro y el stock proyectado.
type AnalyticsRepository interface {
	GetMovementTotals(ctx context.Context, start, end time.Time) ([]MovementTypeTotal, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]ProductActivity, error)
	GetStockValuation(ctx context.Context) (StockValuation, error)
}
