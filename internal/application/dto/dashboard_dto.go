package dto

import "github.com/shopspring/decimal"

// MovementTypeTotalDTO total de un tipo de movimiento en el período.
type MovementTypeTotalDTO struct {
	Type     string          `json:"tipo"`
	Count    int             `json:"movimientos"`
	Quantity decimal.Decimal `json:"cantidad"`
}

// TopProductDTO producto con más unidades movidas.
type TopProductDTO struct {
	ProductID   string          `json:"producto"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"nombre"`
	Movements   int             `json:"movimientos"`
	Units       decimal.Decimal `json:"unidades"`
	Net         decimal.Decimal `json:"neto"`
}

// DashboardSummaryDTO resumen de actividad del inicio.
type DashboardSummaryDTO struct {
	Today        []MovementTypeTotalDTO `json:"hoy"`
	Month        []MovementTypeTotalDTO `json:"mes"`
	TopProducts  []TopProductDTO        `json:"top_productos"`
	ProductCount int                    `json:"productos"`
	StockUnits   decimal.Decimal        `json:"unidades_en_stock"`
	StockValue   decimal.Decimal        `json:"valor_inventario"`
	DateLabel    string                 `json:"periodo"`
}
