package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse salida de un movimiento para listados, detalle y planilla.
type MovementResponse struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"fecha"`
	Type           string          `json:"tipo"`
	Direction      string          `json:"ajuste_signo,omitempty"`
	ProductID      string          `json:"producto"`
	ProductName    string          `json:"producto_nombre"`
	ProductSKU     string          `json:"producto_sku"`
	SupplierName   string          `json:"proveedor,omitempty"`
	Quantity       decimal.Decimal `json:"cantidad"`
	SignedQuantity decimal.Decimal `json:"cantidad_con_signo"`
	Origin         string          `json:"bodega_origen,omitempty"`
	Destination    string          `json:"bodega_destino,omitempty"`
	LotCode        string          `json:"lote,omitempty"`
	Serial         string          `json:"serie,omitempty"`
	ExpiryDate     *time.Time      `json:"fecha_vencimiento,omitempty"`
	Username       string          `json:"usuario,omitempty"`
	Note           string          `json:"observacion,omitempty"`
	DocumentRef    string          `json:"documento_referencia,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementDescriptiveRequest campos editables de un movimiento ya registrado.
type MovementDescriptiveRequest struct {
	Note        string `json:"observacion" validate:"max=500"`
	DocumentRef string `json:"documento_referencia" validate:"max=100"`
	Serial      string `json:"serie" validate:"max=100"`
}
