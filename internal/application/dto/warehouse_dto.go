package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseRequest entrada para crear o actualizar una bodega.
type WarehouseRequest struct {
	Code        string `json:"codigo" validate:"required,max=30"`
	Name        string `json:"nombre" validate:"required,max=100"`
	Location    string `json:"ubicacion" validate:"max=200"`
	Description string `json:"descripcion" validate:"max=500"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"codigo"`
	Name        string    `json:"nombre"`
	Location    string    `json:"ubicacion"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WarehouseStockResponse stock de un producto en una bodega.
type WarehouseStockResponse struct {
	WarehouseID   string          `json:"bodega"`
	WarehouseCode string          `json:"codigo"`
	Quantity      decimal.Decimal `json:"cantidad"`
}
