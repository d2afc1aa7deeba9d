package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotRequest entrada para crear o actualizar un lote.
type LotRequest struct {
	Code       string          `json:"codigo" validate:"required,max=50"`
	ProductID  string          `json:"producto" validate:"required"`
	ExpiryDate *time.Time      `json:"fecha_vencimiento"`
	Available  decimal.Decimal `json:"cantidad" validate:"gte=0"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"codigo"`
	ProductID   string          `json:"producto"`
	ProductName string          `json:"producto_nombre,omitempty"`
	ExpiryDate  *time.Time      `json:"fecha_vencimiento"`
	Available   decimal.Decimal `json:"cantidad"`
}

// LotOption elemento del selector AJAX de lotes disponibles.
type LotOption struct {
	ID          string          `json:"id"`
	Code        string          `json:"codigo"`
	Description string          `json:"descripcion"`
	Available   decimal.Decimal `json:"disponible"`
}
