package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// Campos del formulario de movimiento a los que se asocian los errores.
const (
	FieldType        = "tipo"
	FieldProduct     = "producto"
	FieldSupplier    = "proveedor"
	FieldQuantity    = "cantidad"
	FieldOrigin      = "bodega_origen"
	FieldDestination = "bodega_destino"
	FieldLot         = "lote"
	FieldExpiry      = "fecha_vencimiento"
	FieldDirection   = "ajuste_signo"
)

// Mensajes de validación.
const (
	MsgTypeInvalid         = "Seleccione un tipo de movimiento válido."
	MsgProductRequired     = "Debe seleccionar un producto."
	MsgQuantityPositive    = "La cantidad debe ser mayor que cero."
	MsgQuantityScale       = "La cantidad admite como máximo 4 decimales."
	MsgQuantityRange       = "La cantidad debe ser menor que 10.000.000.000."
	MsgOriginRequired      = "Debe seleccionar una bodega de origen."
	MsgDestinationRequired = "Debe seleccionar una bodega de destino."
	MsgSameWarehouse       = "La bodega destino no puede ser igual a la de origen."
	MsgLotMismatch         = "El lote seleccionado no corresponde al producto elegido."
	MsgExpiryOrLot         = "Debe indicar fecha de vencimiento o seleccionar un lote."
	MsgDirectionRequired   = "Indique si el ajuste suma (+) o resta (-) stock."
)

// Límites de la columna NUMERIC(14,4) de cantidades.
const QuantityMaxDecimals = 4

var quantityLimit = decimal.New(1, 10)

// MovementCandidate es un movimiento aún no persistido, tal como llega del formulario.
// Lot es el lote ya resuelto (nil si no se eligió).
type MovementCandidate struct {
	Type                   string
	AdjustmentDirection    string
	ProductID              string
	SupplierID             string
	OriginWarehouseID      string
	DestinationWarehouseID string
	Quantity               *decimal.Decimal
	Lot                    *entity.Lot
	ExpiryDate             *time.Time
}

// ValidateMovement aplica las reglas de negocio del movimiento y devuelve todos los errores
// encontrados; no se detiene en el primero. Un resultado vacío significa aceptado.
func ValidateMovement(c MovementCandidate) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if !entity.IsValidMovementType(c.Type) {
		errs.Add(FieldType, MsgTypeInvalid)
	}
	if c.ProductID == "" {
		errs.Add(FieldProduct, MsgProductRequired)
	}

	switch {
	case c.Quantity == nil || !c.Quantity.GreaterThan(decimal.Zero):
		errs.Add(FieldQuantity, MsgQuantityPositive)
	case !c.Quantity.Equal(c.Quantity.Truncate(QuantityMaxDecimals)):
		errs.Add(FieldQuantity, MsgQuantityScale)
	case c.Quantity.GreaterThanOrEqual(quantityLimit):
		errs.Add(FieldQuantity, MsgQuantityRange)
	}

	if c.Type == entity.MovementTransferencia {
		if c.OriginWarehouseID == "" {
			errs.Add(FieldOrigin, MsgOriginRequired)
		}
		if c.DestinationWarehouseID == "" {
			errs.Add(FieldDestination, MsgDestinationRequired)
		}
		if c.OriginWarehouseID != "" && c.OriginWarehouseID == c.DestinationWarehouseID {
			errs.Add(FieldDestination, MsgSameWarehouse)
		}
	}

	if c.Lot != nil && c.Lot.ProductID != c.ProductID {
		errs.Add(FieldLot, MsgLotMismatch)
	}

	if c.Lot == nil && c.ExpiryDate == nil {
		errs.Add(FieldExpiry, MsgExpiryOrLot)
	}

	if c.Type == entity.MovementAjuste &&
		c.AdjustmentDirection != entity.AdjustmentIncrease && c.AdjustmentDirection != entity.AdjustmentDecrease {
		errs.Add(FieldDirection, MsgDirectionRequired)
	}

	return errs
}
