package dto

import "github.com/shopspring/decimal"

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto con stock bajo.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"producto"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"nombre"`
	CurrentStock       decimal.Decimal `json:"stock_actual"`
	Threshold          decimal.Decimal `json:"umbral"`
	SuggestedOrderQty  decimal.Decimal `json:"cantidad_sugerida"`
	SupplierID         string          `json:"proveedor,omitempty"`
	SupplierName       string          `json:"proveedor_nombre,omitempty"`
	LeadTimeDays       int             `json:"lead_time_dias,omitempty"`
	UnitCost           decimal.Decimal `json:"costo_unitario"`
	EstimatedOrderCost decimal.Decimal `json:"costo_estimado"`
	Priority           int             `json:"prioridad"`
}
