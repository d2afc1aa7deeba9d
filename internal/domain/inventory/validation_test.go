package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/inventory"
)

func qty(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func expiry() *time.Time {
	t := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)
	return &t
}

func validCandidate() inventory.MovementCandidate {
	return inventory.MovementCandidate{
		Type:       entity.MovementIngreso,
		ProductID:  "p1",
		Quantity:   qty("10"),
		ExpiryDate: expiry(),
	}
}

func TestValidateMovement_IngresoValido(t *testing.T) {
	errs := inventory.ValidateMovement(validCandidate())
	assert.True(t, errs.Empty(), "no debería haber errores: %v", errs)
}

func TestValidateMovement_CantidadNoPositiva(t *testing.T) {
	for _, tipo := range entity.MovementTypes {
		for _, q := range []*decimal.Decimal{nil, qty("0"), qty("-3")} {
			c := validCandidate()
			c.Type = tipo
			c.AdjustmentDirection = entity.AdjustmentIncrease
			c.OriginWarehouseID, c.DestinationWarehouseID = "w1", "w2"
			c.Quantity = q
			errs := inventory.ValidateMovement(c)
			assert.Equal(t, []string{inventory.MsgQuantityPositive}, errs[inventory.FieldQuantity], "tipo %s", tipo)
		}
	}
}

func TestValidateMovement_CantidadFueraDeLaColumna(t *testing.T) {
	cases := map[string]string{
		"0.00001":      inventory.MsgQuantityScale,
		"12.34567":     inventory.MsgQuantityScale,
		"10000000000":  inventory.MsgQuantityRange,
		"100000000000": inventory.MsgQuantityRange,
	}
	for q, msg := range cases {
		c := validCandidate()
		c.Quantity = qty(q)
		errs := inventory.ValidateMovement(c)
		assert.Equal(t, []string{msg}, errs[inventory.FieldQuantity], "cantidad %s", q)
	}

	for _, q := range []string{"0.0001", "12.5000", "9999999999.9999"} {
		c := validCandidate()
		c.Quantity = qty(q)
		assert.False(t, inventory.ValidateMovement(c).Has(inventory.FieldQuantity), "cantidad %s", q)
	}
}

func TestValidateMovement_TransferenciaMismaBodega(t *testing.T) {
	c := validCandidate()
	c.Type = entity.MovementTransferencia
	c.OriginWarehouseID = "w1"
	c.DestinationWarehouseID = "w1"

	errs := inventory.ValidateMovement(c)
	assert.Equal(t, []string{inventory.MsgSameWarehouse}, errs[inventory.FieldDestination])
	assert.False(t, errs.Has(inventory.FieldOrigin))
}

func TestValidateMovement_TransferenciaSinBodegas(t *testing.T) {
	c := validCandidate()
	c.Type = entity.MovementTransferencia

	errs := inventory.ValidateMovement(c)
	assert.Equal(t, []string{inventory.MsgOriginRequired}, errs[inventory.FieldOrigin])
	assert.Equal(t, []string{inventory.MsgDestinationRequired}, errs[inventory.FieldDestination])
}

func TestValidateMovement_SalidaNoExigeBodegas(t *testing.T) {
	c := validCandidate()
	c.Type = entity.MovementSalida
	assert.True(t, inventory.ValidateMovement(c).Empty())
}

func TestValidateMovement_LoteDeOtroProducto(t *testing.T) {
	c := validCandidate()
	c.ExpiryDate = nil
	c.Lot = &entity.Lot{ID: "l1", ProductID: "otro"}

	errs := inventory.ValidateMovement(c)
	assert.Equal(t, []string{inventory.MsgLotMismatch}, errs[inventory.FieldLot])
	assert.False(t, errs.Has(inventory.FieldExpiry), "el lote cubre la trazabilidad")
}

func TestValidateMovement_SinLoteNiVencimiento(t *testing.T) {
	c := validCandidate()
	c.ExpiryDate = nil

	errs := inventory.ValidateMovement(c)
	assert.Equal(t, []string{inventory.MsgExpiryOrLot}, errs[inventory.FieldExpiry])
}

func TestValidateMovement_AjusteExigeDireccion(t *testing.T) {
	c := validCandidate()
	c.Type = entity.MovementAjuste
	assert.True(t, inventory.ValidateMovement(c).Has(inventory.FieldDirection))

	c.AdjustmentDirection = entity.AdjustmentDecrease
	assert.True(t, inventory.ValidateMovement(c).Empty())
}

// Todos los errores se reportan juntos.
func TestValidateMovement_AcumulaErrores(t *testing.T) {
	c := inventory.MovementCandidate{
		Type:                   entity.MovementTransferencia,
		ProductID:              "p1",
		Quantity:               qty("0"),
		OriginWarehouseID:      "w1",
		DestinationWarehouseID: "w1",
		Lot:                    &entity.Lot{ID: "l1", ProductID: "p2"},
	}
	errs := inventory.ValidateMovement(c)
	assert.True(t, errs.Has(inventory.FieldQuantity))
	assert.True(t, errs.Has(inventory.FieldDestination))
	assert.True(t, errs.Has(inventory.FieldLot))
	assert.Len(t, errs, 3)
}

func TestValidateMovement_TipoYProductoRequeridos(t *testing.T) {
	c := validCandidate()
	c.Type = "REGALO"
	c.ProductID = ""
	errs := inventory.ValidateMovement(c)
	assert.True(t, errs.Has(inventory.FieldType))
	assert.True(t, errs.Has(inventory.FieldProduct))
}
