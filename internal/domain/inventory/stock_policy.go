package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// StockDelta devuelve el cambio con signo que un movimiento aplica al stock del producto.
//
//	INGRESO            +q
//	SALIDA, DEVOLUCION -q
//	AJUSTE             +q o -q según la dirección
//	TRANSFERENCIA      0 (solo cambia de bodega)
func StockDelta(movementType, direction string, qty decimal.Decimal) decimal.Decimal {
	switch movementType {
	case entity.MovementIngreso:
		return qty
	case entity.MovementSalida, entity.MovementDevolucion:
		return qty.Neg()
	case entity.MovementAjuste:
		if direction == entity.AdjustmentDecrease {
			return qty.Neg()
		}
		return qty
	}
	return decimal.Zero
}

// WarehouseEffect es un cambio de stock en una bodega concreta.
type WarehouseEffect struct {
	WarehouseID string
	Delta       decimal.Decimal
}

// WarehouseEffects calcula los cambios por bodega de un movimiento. Las entradas se
// registran en destino y las salidas en origen; si la bodega no viene, no hay efecto.
func WarehouseEffects(m *entity.Movement) []WarehouseEffect {
	var out []WarehouseEffect
	add := func(id *string, delta decimal.Decimal) {
		if id != nil && *id != "" && !delta.IsZero() {
			out = append(out, WarehouseEffect{WarehouseID: *id, Delta: delta})
		}
	}
	q := m.Quantity
	switch m.Type {
	case entity.MovementTransferencia:
		add(m.OriginWarehouseID, q.Neg())
		add(m.DestinationWarehouseID, q)
	default:
		delta := StockDelta(m.Type, m.AdjustmentDirection, q)
		if delta.IsPositive() {
			add(m.DestinationWarehouseID, delta)
		} else {
			add(m.OriginWarehouseID, delta)
		}
	}
	return out
}
