package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es el stock de un producto en una bodega (tabla warehouse_stock).
// La suma por bodega puede diferir de Product.CurrentStock cuando hay movimientos sin bodega.
type Stock struct {
	ProductID     string
	WarehouseID   string
	WarehouseCode string // solo lectura
	Quantity      decimal.Decimal
	UpdatedAt     time.Time
}
