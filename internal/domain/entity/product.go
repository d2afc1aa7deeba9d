package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceptadas para compra y venta.
const (
	UOMUnidad    = "UN"
	UOMCaja      = "CJ"
	UOMGramo     = "G"
	UOMKilogramo = "KG"
	UOMLitro     = "LT"
)

// UnitsOfMeasure lista las unidades válidas en el orden en que se muestran en formularios.
var UnitsOfMeasure = []string{UOMUnidad, UOMCaja, UOMGramo, UOMKilogramo, UOMLitro}

// IsValidUOM indica si u es una unidad de medida conocida.
func IsValidUOM(u string) bool {
	for _, v := range UnitsOfMeasure {
		if v == u {
			return true
		}
	}
	return false
}

// Product representa un producto del catálogo.
// CurrentStock es una proyección del libro de movimientos: solo lo modifica el motor de inventario.
// AverageCost es costo promedio ponderado (inicia en 0) y también se recalcula desde movimientos.
type Product struct {
	ID               string
	SKU              string // único, en mayúsculas (SKU + dígitos)
	EAN              string // opcional, único
	Name             string
	Description      string
	Category         string
	Brand            string
	Model            string
	UOMPurchase      string
	UOMSale          string
	ConversionFactor decimal.Decimal
	StandardCost     decimal.Decimal
	AverageCost      decimal.Decimal
	SalePrice        decimal.Decimal
	TaxRate          decimal.Decimal // IVA en porcentaje (Chile: 19)
	MinStock         decimal.Decimal
	MaxStock         decimal.Decimal
	ReorderPoint     *decimal.Decimal
	Perishable       bool
	LotTracked       bool
	SerialTracked    bool
	ImageURL         string
	DatasheetURL     string
	CurrentStock     decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AlertThreshold devuelve el umbral de alerta: punto de reorden si existe, si no el stock mínimo.
func (p *Product) AlertThreshold() decimal.Decimal {
	if p.ReorderPoint != nil {
		return *p.ReorderPoint
	}
	return p.MinStock
}

// IsLowStock es verdadero cuando el stock actual es menor o igual al umbral de alerta.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock.LessThanOrEqual(p.AlertThreshold())
}
