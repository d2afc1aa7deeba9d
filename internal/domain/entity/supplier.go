package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proveedor.
const (
	SupplierActive  = "ACTIVO"
	SupplierBlocked = "BLOQUEADO"
)

// Condiciones de pago.
const (
	PaymentCash     = "EFECTIVO"
	PaymentDebit    = "DEBITO"
	PaymentTransfer = "TRANSFERENCIA"
)

// Monedas aceptadas.
const (
	CurrencyCLP = "CLP"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

var (
	PaymentTerms     = []string{PaymentCash, PaymentDebit, PaymentTransfer}
	Currencies       = []string{CurrencyCLP, CurrencyUSD, CurrencyEUR}
	SupplierStatuses = []string{SupplierActive, SupplierBlocked}
)

// Supplier representa un proveedor. RUT se guarda normalizado como "cuerpo-DV".
type Supplier struct {
	ID           string
	RUT          string
	LegalName    string
	TradeName    string
	Email        string
	Phone        string
	Website      string
	Address      string
	City         string
	Country      string
	PaymentTerms string
	Currency     string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBlocked indica si el proveedor no puede participar en nuevos movimientos.
func (s *Supplier) IsBlocked() bool {
	return s.Status == SupplierBlocked
}

// ProductSupplier es la asociación producto-proveedor con condiciones de abastecimiento.
// El par (ProductID, SupplierID) es único.
type ProductSupplier struct {
	ID           string
	ProductID    string
	SupplierID   string
	Cost         decimal.Decimal
	LeadTimeDays int
	MinLot       decimal.Decimal
	DiscountPct  *decimal.Decimal
	Preferred    bool
	// Datos relacionados para listados (solo lectura).
	ProductSKU   string
	ProductName  string
	SupplierName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NetCost aplica el descuento porcentual al costo pactado.
func (ps *ProductSupplier) NetCost() decimal.Decimal {
	if ps.DiscountPct == nil || ps.DiscountPct.IsZero() {
		return ps.Cost
	}
	factor := decimal.NewFromInt(100).Sub(*ps.DiscountPct).Div(decimal.NewFromInt(100))
	return ps.Cost.Mul(factor)
}
