package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRequest entrada para crear o actualizar un proveedor.
type SupplierRequest struct {
	RUT          string `json:"rut_nif" validate:"required"`
	LegalName    string `json:"razon_social" validate:"required,max=200"`
	TradeName    string `json:"nombre_fantasia" validate:"max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"telefono" validate:"omitempty,phone9"`
	Website      string `json:"sitio_web" validate:"omitempty,httpurl"`
	Address      string `json:"direccion" validate:"max=250"`
	City         string `json:"ciudad" validate:"max=100"`
	Country      string `json:"pais" validate:"max=100"`
	PaymentTerms string `json:"condiciones_pago" validate:"required,oneof=EFECTIVO DEBITO TRANSFERENCIA"`
	Currency     string `json:"moneda" validate:"required,oneof=CLP USD EUR"`
	ContactName  string `json:"contacto_principal_nombre" validate:"max=120"`
	ContactEmail string `json:"contacto_principal_email" validate:"omitempty,email"`
	ContactPhone string `json:"contacto_principal_telefono" validate:"omitempty,phone9"`
	Status       string `json:"estado" validate:"required,oneof=ACTIVO BLOQUEADO"`
	Notes        string `json:"observaciones" validate:"max=1000"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string                    `json:"id"`
	RUT          string                    `json:"rut_nif"`
	LegalName    string                    `json:"razon_social"`
	TradeName    string                    `json:"nombre_fantasia"`
	Email        string                    `json:"email"`
	Phone        string                    `json:"telefono"`
	Website      string                    `json:"sitio_web"`
	Address      string                    `json:"direccion"`
	City         string                    `json:"ciudad"`
	Country      string                    `json:"pais"`
	PaymentTerms string                    `json:"condiciones_pago"`
	Currency     string                    `json:"moneda"`
	ContactName  string                    `json:"contacto_principal_nombre"`
	ContactEmail string                    `json:"contacto_principal_email"`
	ContactPhone string                    `json:"contacto_principal_telefono"`
	Status       string                    `json:"estado"`
	Notes        string                    `json:"observaciones"`
	Products     []ProductSupplierResponse `json:"productos,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ProductSupplierRequest asocia un producto al proveedor con sus condiciones.
type ProductSupplierRequest struct {
	ProductID    string           `json:"producto" validate:"required"`
	Cost         decimal.Decimal  `json:"costo" validate:"gte=0"`
	LeadTimeDays int              `json:"lead_time_dias" validate:"gte=1"`
	MinLot       decimal.Decimal  `json:"min_lote" validate:"gt=0"`
	DiscountPct  *decimal.Decimal `json:"descuento_pct" validate:"omitempty,gte=0,lte=100"`
	Preferred    bool             `json:"preferente"`
}

// ProductSupplierResponse condiciones de un producto para el proveedor.
type ProductSupplierResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"producto"`
	ProductSKU   string           `json:"sku"`
	ProductName  string           `json:"nombre"`
	Cost         decimal.Decimal  `json:"costo"`
	NetCost      decimal.Decimal  `json:"costo_neto"`
	LeadTimeDays int              `json:"lead_time_dias"`
	MinLot       decimal.Decimal  `json:"min_lote"`
	DiscountPct  *decimal.Decimal `json:"descuento_pct"`
	Preferred    bool             `json:"preferente"`
}
