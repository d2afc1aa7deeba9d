package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementIngreso       = "INGRESO"       // entrada de mercadería
	MovementSalida        = "SALIDA"        // salida / despacho
	MovementAjuste        = "AJUSTE"        // ajuste con signo explícito
	MovementDevolucion    = "DEVOLUCION"    // devolución a proveedor
	MovementTransferencia = "TRANSFERENCIA" // traslado entre bodegas
)

// MovementTypes lista los tipos válidos en el orden de los formularios.
var MovementTypes = []string{MovementIngreso, MovementSalida, MovementAjuste, MovementDevolucion, MovementTransferencia}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	for _, v := range MovementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Dirección de un AJUSTE.
const (
	AdjustmentIncrease = "+"
	AdjustmentDecrease = "-"
)

// Movement es una fila del libro de inventario. Inmutable salvo los campos descriptivos
// (Note, DocumentRef, Serial). CreatedAt lo asigna el servidor.
type Movement struct {
	ID                     string
	Type                   string
	AdjustmentDirection    string // solo AJUSTE: "+" o "-"
	ProductID              string
	SupplierID             *string
	OriginWarehouseID      *string
	DestinationWarehouseID *string
	Quantity               decimal.Decimal // siempre positiva; el signo lo da el tipo
	LotID                  *string
	Serial                 string
	ExpiryDate             *time.Time
	UserID                 *string
	Note                   string
	DocumentRef            string
	CreatedAt              time.Time

	// Datos relacionados para listados y comprobantes (solo lectura).
	ProductName     string
	ProductSKU      string
	SupplierName    string
	OriginCode      string
	OriginName      string
	DestinationCode string
	DestinationName string
	LotCode         string
	Username        string
}

// OriginLabel "código - nombre" de la bodega de origen, vacío si no hay.
func (m *Movement) OriginLabel() string {
	if m.OriginCode == "" {
		return ""
	}
	return m.OriginCode + " - " + m.OriginName
}

// DestinationLabel "código - nombre" de la bodega de destino, vacío si no hay.
func (m *Movement) DestinationLabel() string {
	if m.DestinationCode == "" {
		return ""
	}
	return m.DestinationCode + " - " + m.DestinationName
}
