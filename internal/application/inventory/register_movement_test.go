package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	domaininv "github.com/jhoicas/dulceria-lilis/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func qtyPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func vence() *time.Time {
	t := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	return &t
}

// seed deja un producto p1 con stock inicial, dos bodegas y dos proveedores (uno bloqueado).
func seed(stock string) *memStore {
	s := newMemStore()
	s.products["p1"] = entity.Product{ID: "p1", SKU: "SKU001", Name: "Chocolate", CurrentStock: dec(stock), MinStock: dec("10")}
	s.products["p2"] = entity.Product{ID: "p2", SKU: "SKU002", Name: "Caramelo"}
	s.warehouses["w1"] = entity.Warehouse{ID: "w1", Code: "B01", Name: "Central"}
	s.warehouses["w2"] = entity.Warehouse{ID: "w2", Code: "B02", Name: "Sala"}
	s.suppliers["s1"] = entity.Supplier{ID: "s1", LegalName: "Dulces SpA", Status: entity.SupplierActive}
	s.suppliers["s2"] = entity.Supplier{ID: "s2", LegalName: "Bloqueada Ltda", Status: entity.SupplierBlocked}
	s.lots["l1"] = entity.Lot{ID: "l1", Code: "L-001", ProductID: "p1", ExpiryDate: vence(), Available: dec("30")}
	return s
}

func newUseCase(s *memStore, allowNegative bool) *inventory.RegisterMovementUseCase {
	return inventory.NewRegisterMovementUseCase(
		s, lotRepo{s}, supplierRepo{s}, warehouseRepo{s}, sourcingRepo{s},
		inventory.Policy{AllowNegativeStock: allowNegative}, nil,
	)
}

func fieldErrors(t *testing.T, err error) domain.FieldErrors {
	t.Helper()
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe), "se esperaba FieldErrors, se obtuvo %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return fe
}

// ─── Proyección de stock ──────────────────────────────────────────────────────

func TestRecordMovement_IngresoSumaStock(t *testing.T) {
	s := seed("100")
	uc := newUseCase(s, true)

	mov, err := uc.RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:                   entity.MovementIngreso,
		ProductID:              "p1",
		DestinationWarehouseID: "w1",
		Quantity:               qtyPtr("20"),
		ExpiryDate:             vence(),
		UserID:                 "u1",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.True(t, dec("120").Equal(s.products["p1"].CurrentStock))
	assert.True(t, dec("20").Equal(s.stock["p1|w1"]))
	require.Len(t, s.movements, 1)
	assert.Equal(t, "u1", *s.movements[0].UserID)
	assert.Nil(t, s.movements[0].OriginWarehouseID)
}

func TestRecordMovement_SalidaPermiteNegativo(t *testing.T) {
	s := seed("50")
	uc := newUseCase(s, true)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:              entity.MovementSalida,
		ProductID:         "p1",
		OriginWarehouseID: "w1",
		Quantity:          qtyPtr("70"),
		ExpiryDate:        vence(),
	})
	require.NoError(t, err)
	assert.True(t, dec("-20").Equal(s.products["p1"].CurrentStock))
	assert.True(t, dec("-70").Equal(s.stock["p1|w1"]))
}

func TestRecordMovement_SalidaRechazaNegativoSegunPolitica(t *testing.T) {
	s := seed("50")
	uc := newUseCase(s, false)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:       entity.MovementSalida,
		ProductID:  "p1",
		Quantity:   qtyPtr("70"),
		ExpiryDate: vence(),
	})
	fe := fieldErrors(t, err)
	assert.True(t, fe.Has(domaininv.FieldQuantity))
	assert.True(t, dec("50").Equal(s.products["p1"].CurrentStock))
	assert.Empty(t, s.movements)
}

func TestRecordMovement_DevolucionResta(t *testing.T) {
	s := seed("40")
	uc := newUseCase(s, true)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:       entity.MovementDevolucion,
		ProductID:  "p1",
		SupplierID: "s1",
		Quantity:   qtyPtr("5"),
		ExpiryDate: vence(),
	})
	require.NoError(t, err)
	assert.True(t, dec("35").Equal(s.products["p1"].CurrentStock))
}

func TestRecordMovement_AjusteConSigno(t *testing.T) {
	s := seed("10")
	uc := newUseCase(s, true)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inventory.MovementInputDTO{
		Type: entity.MovementAjuste, AdjustmentDirection: entity.AdjustmentDecrease,
		ProductID: "p1", Quantity: qtyPtr("3"), ExpiryDate: vence(),
	})
	require.NoError(t, err)
	assert.True(t, dec("7").Equal(s.products["p1"].CurrentStock))

	_, err = uc.RecordMovement(ctx, inventory.MovementInputDTO{
		Type: entity.MovementAjuste, AdjustmentDirection: entity.AdjustmentIncrease,
		ProductID: "p1", Quantity: qtyPtr("5"), ExpiryDate: vence(),
	})
	require.NoError(t, err)
	assert.True(t, dec("12").Equal(s.products["p1"].CurrentStock))
	assert.Equal(t, entity.AdjustmentIncrease, s.movements[1].AdjustmentDirection)
}

func TestRecordMovement_AjusteSinSigno(t *testing.T) {
	s := seed("10")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementAjuste, ProductID: "p1", Quantity: qtyPtr("3"), ExpiryDate: vence(),
	})
	fe := fieldErrors(t, err)
	assert.True(t, fe.Has(domaininv.FieldDirection))
}

func TestRecordMovement_TransferenciaMueveEntreBodegas(t *testing.T) {
	s := seed("25")
	s.stock["p1|w1"] = dec("25")
	uc := newUseCase(s, false)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:                   entity.MovementTransferencia,
		ProductID:              "p1",
		OriginWarehouseID:      "w1",
		DestinationWarehouseID: "w2",
		Quantity:               qtyPtr("10"),
		ExpiryDate:             vence(),
	})
	require.NoError(t, err)
	assert.True(t, dec("25").Equal(s.products["p1"].CurrentStock), "el total no cambia")
	assert.True(t, dec("15").Equal(s.stock["p1|w1"]))
	assert.True(t, dec("10").Equal(s.stock["p1|w2"]))
}

func TestRecordMovement_LoteActualizaDisponible(t *testing.T) {
	s := seed("30")
	uc := newUseCase(s, true)

	mov, err := uc.RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:      entity.MovementSalida,
		ProductID: "p1",
		LotID:     "l1",
		Quantity:  qtyPtr("12"),
	})
	require.NoError(t, err)
	assert.True(t, dec("18").Equal(s.lots["l1"].Available))
	require.NotNil(t, mov.ExpiryDate, "hereda el vencimiento del lote")
	assert.Equal(t, vence(), mov.ExpiryDate)
}

func TestRecordMovement_IngresoRecalculaCostoPromedio(t *testing.T) {
	s := seed("10")
	p := s.products["p1"]
	p.AverageCost = dec("100")
	s.products["p1"] = p
	discount := dec("10")
	s.links = append(s.links, entity.ProductSupplier{ProductID: "p1", SupplierID: "s1", Cost: dec("200"), DiscountPct: &discount})

	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", SupplierID: "s1", Quantity: qtyPtr("10"), ExpiryDate: vence(),
	})
	require.NoError(t, err)
	// (10*100 + 10*180) / 20
	assert.Equal(t, "140", s.products["p1"].AverageCost.String())
}

// ─── Rechazos ─────────────────────────────────────────────────────────────────

func TestRecordMovement_CantidadConMasDecimalesQueLaColumna(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", Quantity: qtyPtr("0.00001"), ExpiryDate: vence(),
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{domaininv.MsgQuantityScale}, fe[domaininv.FieldQuantity])
	assert.Empty(t, s.movements)
	assert.True(t, s.products["p1"].CurrentStock.IsZero())
}

func TestRecordMovement_LoteDeOtroProducto(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p2", LotID: "l1", Quantity: qtyPtr("1"),
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{domaininv.MsgLotMismatch}, fe[domaininv.FieldLot])
	assert.Empty(t, s.movements)
}

func TestRecordMovement_LoteInexistente(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", LotID: "nope", Quantity: qtyPtr("1"),
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{inventory.MsgLotNotFound}, fe[domaininv.FieldLot])
	assert.False(t, fe.Has(domaininv.FieldExpiry))
}

func TestRecordMovement_AcumulaTodosLosErrores(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type:                   entity.MovementTransferencia,
		ProductID:              "p1",
		OriginWarehouseID:      "w1",
		DestinationWarehouseID: "w1",
		Quantity:               qtyPtr("0"),
	})
	fe := fieldErrors(t, err)
	assert.True(t, fe.Has(domaininv.FieldQuantity))
	assert.True(t, fe.Has(domaininv.FieldDestination))
	assert.True(t, fe.Has(domaininv.FieldExpiry))
}

func TestValidate_EntradaParcialNoPersiste(t *testing.T) {
	s := seed("0")
	// Cantidad nil: el formulario no pudo interpretarla.
	errs, err := newUseCase(s, true).Validate(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", SupplierID: "s2", DestinationWarehouseID: "w9",
		ExpiryDate: vence(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{domaininv.MsgQuantityPositive}, errs[domaininv.FieldQuantity])
	assert.Equal(t, []string{inventory.MsgSupplierBlocked}, errs[domaininv.FieldSupplier])
	assert.Equal(t, []string{inventory.MsgWarehouseNotFound}, errs[domaininv.FieldDestination])
	assert.Empty(t, s.movements)

	ok, err := newUseCase(s, true).Validate(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", SupplierID: "s1", Quantity: qtyPtr("5"), ExpiryDate: vence(),
	})
	require.NoError(t, err)
	assert.True(t, ok.Empty())
	assert.True(t, s.products["p1"].CurrentStock.IsZero())
}

func TestRecordMovement_ProveedorBloqueado(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", SupplierID: "s2", Quantity: qtyPtr("5"), ExpiryDate: vence(),
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{inventory.MsgSupplierBlocked}, fe[domaininv.FieldSupplier])
	assert.True(t, s.products["p1"].CurrentStock.IsZero())
}

func TestRecordMovement_BodegaInexistente(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p1", DestinationWarehouseID: "w9", Quantity: qtyPtr("5"), ExpiryDate: vence(),
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{inventory.MsgWarehouseNotFound}, fe[domaininv.FieldDestination])
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	s := seed("0")
	_, err := newUseCase(s, true).RecordMovement(context.Background(), inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: "p9", Quantity: qtyPtr("5"), ExpiryDate: vence(),
	})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{inventory.MsgProductNotFound}, fe[domaininv.FieldProduct])
	assert.Empty(t, s.movements)
}

// staleLots devuelve la lectura previa a la tx y, justo después, deja que otro
// movimiento sobre el mismo lote se confirme.
type staleLots struct {
	lotRepo
	before func()
}

func (r *staleLots) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	l, err := r.lotRepo.GetByID(ctx, id)
	if r.before != nil {
		fn := r.before
		r.before = nil
		fn()
	}
	return l, err
}

func TestRecordMovement_LoteReleidoDentroDeLaTransaccion(t *testing.T) {
	s := seed("100")
	lots := &staleLots{lotRepo: lotRepo{s}}
	uc := inventory.NewRegisterMovementUseCase(
		s, lots, supplierRepo{s}, warehouseRepo{s}, sourcingRepo{s},
		inventory.Policy{AllowNegativeStock: false}, nil,
	)
	salida := inventory.MovementInputDTO{Type: entity.MovementSalida, ProductID: "p1", LotID: "l1", Quantity: qtyPtr("20")}

	lots.before = func() {
		_, err := uc.RecordMovement(context.Background(), salida)
		require.NoError(t, err)
	}

	_, err := uc.RecordMovement(context.Background(), salida)
	fe := fieldErrors(t, err)
	assert.True(t, fe.Has(domaininv.FieldLot))

	assert.True(t, dec("10").Equal(s.lots["l1"].Available), "el lote no queda bajo cero")
	assert.True(t, dec("80").Equal(s.products["p1"].CurrentStock))
	assert.Len(t, s.movements, 1)
}
