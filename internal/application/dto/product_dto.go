package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto (formulario y API).
// CurrentStock y AverageCost no se aceptan: los mantiene el motor de inventario.
type ProductRequest struct {
	SKU              string           `json:"sku" validate:"required,max=50,sku"`
	EAN              string           `json:"ean_upc" validate:"omitempty,ean"`
	Name             string           `json:"nombre" validate:"required,max=20,nodigits"`
	Description      string           `json:"descripcion" validate:"max=500"`
	Category         string           `json:"categoria" validate:"required,max=50,nodigits"`
	Brand            string           `json:"marca" validate:"max=50"`
	Model            string           `json:"modelo" validate:"max=50"`
	UOMPurchase      string           `json:"uom_compra" validate:"required,uom"`
	UOMSale          string           `json:"uom_venta" validate:"required,uom"`
	ConversionFactor decimal.Decimal  `json:"factor_conversion" validate:"gt=0"`
	StandardCost     decimal.Decimal  `json:"costo_estandar" validate:"gte=0"`
	SalePrice        decimal.Decimal  `json:"precio_venta" validate:"gte=0"`
	TaxRate          decimal.Decimal  `json:"impuesto_iva" validate:"gte=0,lte=100"`
	MinStock         decimal.Decimal  `json:"stock_minimo" validate:"gte=0"`
	MaxStock         decimal.Decimal  `json:"stock_maximo" validate:"gte=0"`
	ReorderPoint     *decimal.Decimal `json:"punto_reorden" validate:"omitempty,gte=0"`
	Perishable       bool             `json:"perishable"`
	LotTracked       bool             `json:"control_por_lote"`
	SerialTracked    bool             `json:"control_por_serie"`
	ImageURL         string           `json:"imagen_url" validate:"omitempty,httpurl"`
	DatasheetURL     string           `json:"ficha_tecnica_url" validate:"omitempty,httpurl"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string           `json:"id"`
	SKU              string           `json:"sku"`
	EAN              string           `json:"ean_upc"`
	Name             string           `json:"nombre"`
	Description      string           `json:"descripcion"`
	Category         string           `json:"categoria"`
	Brand            string           `json:"marca"`
	Model            string           `json:"modelo"`
	UOMPurchase      string           `json:"uom_compra"`
	UOMSale          string           `json:"uom_venta"`
	ConversionFactor decimal.Decimal  `json:"factor_conversion"`
	StandardCost     decimal.Decimal  `json:"costo_estandar"`
	AverageCost      decimal.Decimal  `json:"costo_promedio"`
	SalePrice        decimal.Decimal  `json:"precio_venta"`
	TaxRate          decimal.Decimal  `json:"impuesto_iva"`
	MinStock         decimal.Decimal  `json:"stock_minimo"`
	MaxStock         decimal.Decimal  `json:"stock_maximo"`
	ReorderPoint     *decimal.Decimal `json:"punto_reorden"`
	Perishable       bool             `json:"perishable"`
	LotTracked       bool             `json:"control_por_lote"`
	SerialTracked    bool             `json:"control_por_serie"`
	ImageURL         string           `json:"imagen_url"`
	DatasheetURL     string           `json:"ficha_tecnica_url"`
	CurrentStock     decimal.Decimal  `json:"stock_actual"`
	LowStock         bool             `json:"alerta_stock_bajo"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductOption elemento de los selectores AJAX.
type ProductOption struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
	SKU  string `json:"sku"`
}
