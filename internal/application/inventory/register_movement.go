package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

// RegisterMovementUseCase registra movimientos en el libro de inventario y, en la misma
// transacción, actualiza la proyección de stock del producto, de la bodega y del lote.
type RegisterMovementUseCase struct {
	txRunner   TxRunner
	lots       repository.LotRepository
	suppliers  repository.SupplierRepository
	warehouses repository.WarehouseRepository
	sourcing   repository.ProductSupplierRepository
	policy     Policy
	log        *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	lots repository.LotRepository,
	suppliers repository.SupplierRepository,
	warehouses repository.WarehouseRepository,
	sourcing repository.ProductSupplierRepository,
	policy Policy,
	log *logger.Logger,
) *RegisterMovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterMovementUseCase{
		txRunner:   txRunner,
		lots:       lots,
		suppliers:  suppliers,
		warehouses: warehouses,
		sourcing:   sourcing,
		policy:     policy,
		log:        log,
	}
}

// MovementInputDTO entrada para registrar un movimiento.
// Los IDs opcionales van vacíos cuando no se eligen; UserID vacío = usuario anónimo.
type MovementInputDTO struct {
	Type                   string
	AdjustmentDirection    string
	ProductID              string
	SupplierID             string
	OriginWarehouseID      string
	DestinationWarehouseID string
	Quantity               *decimal.Decimal
	LotID                  string
	Serial                 string
	ExpiryDate             *time.Time
	UserID                 string
	Note                   string
	DocumentRef            string
}

// Mensajes de errores que dependen de datos persistidos.
const (
	MsgLotNotFound       = "El lote seleccionado no existe."
	MsgSupplierNotFound  = "El proveedor seleccionado no existe."
	MsgSupplierBlocked   = "El proveedor está bloqueado y no puede registrar movimientos."
	MsgWarehouseNotFound = "La bodega seleccionada no existe."
	MsgProductNotFound   = "El producto seleccionado no existe."
	MsgInsufficientStock = "Stock insuficiente: disponible %s."
	MsgLotInsufficient   = "El lote no tiene cantidad suficiente: disponible %s."
)

// RecordMovement valida el movimiento, lo inserta en el libro y aplica su efecto sobre el
// stock dentro de una sola transacción. Devuelve domain.FieldErrors si hay errores de negocio;
// en ese caso no se persiste nada.
func (uc *RegisterMovementUseCase) RecordMovement(ctx context.Context, in MovementInputDTO) (*entity.Movement, error) {
	errs, lot, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}

	qty := *in.Quantity
	mov := &entity.Movement{
		ID:                     uuid.New().String(),
		Type:                   in.Type,
		ProductID:              in.ProductID,
		SupplierID:             optional(in.SupplierID),
		OriginWarehouseID:      optional(in.OriginWarehouseID),
		DestinationWarehouseID: optional(in.DestinationWarehouseID),
		Quantity:               qty,
		LotID:                  optional(in.LotID),
		Serial:                 in.Serial,
		ExpiryDate:             in.ExpiryDate,
		UserID:                 optional(in.UserID),
		Note:                   in.Note,
		DocumentRef:            in.DocumentRef,
	}
	if in.Type == entity.MovementAjuste {
		mov.AdjustmentDirection = in.AdjustmentDirection
	}
	if lot != nil && mov.ExpiryDate == nil {
		mov.ExpiryDate = lot.ExpiryDate
	}

	// Costo de la asociación producto-proveedor para el costo promedio de un INGRESO.
	var entryCost *decimal.Decimal
	if in.Type == entity.MovementIngreso && in.SupplierID != "" {
		link, err := uc.sourcing.Get(ctx, in.ProductID, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			c := link.NetCost()
			entryCost = &c
		}
	}

	delta := inventory.StockDelta(mov.Type, mov.AdjustmentDirection, qty)
	var newStock decimal.Decimal

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) hasta el Commit.
		product, err := repos.Products.GetForUpdate(ctx, mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.FieldErrors{inventory.FieldProduct: {MsgProductNotFound}}
		}
		// El lote leído antes de la tx puede estar desfasado; se relee bloqueado.
		var locked *entity.Lot
		if lot != nil {
			if locked, err = repos.Lots.GetForUpdate(ctx, lot.ID); err != nil {
				return err
			}
			if locked == nil {
				return domain.FieldErrors{inventory.FieldLot: {MsgLotNotFound}}
			}
		}
		if !uc.policy.AllowNegativeStock {
			if fe := checkSufficient(product, locked, delta); fe != nil {
				return fe
			}
		}

		if err := repos.Movements.Create(ctx, mov); err != nil {
			return err
		}

		if entryCost != nil {
			newCost := inventory.CostCalculator(product.CurrentStock, product.AverageCost, qty, *entryCost)
			if err := repos.Products.UpdateAverageCost(ctx, product.ID, newCost); err != nil {
				return err
			}
		}

		newStock = product.CurrentStock
		if !delta.IsZero() {
			if newStock, err = repos.Products.AddStock(ctx, product.ID, delta); err != nil {
				return err
			}
		}

		for _, eff := range inventory.WarehouseEffects(mov) {
			if _, err := repos.Stock.Add(ctx, mov.ProductID, eff.WarehouseID, eff.Delta); err != nil {
				return err
			}
		}

		if locked != nil && !delta.IsZero() {
			if err := repos.Lots.AddQuantity(ctx, locked.ID, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var fe domain.FieldErrors
		if !errors.As(err, &fe) {
			uc.log.Error().Err(err).Str("product_id", in.ProductID).Str("type", in.Type).Msg("registrar movimiento")
		}
		return nil, err
	}

	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("type", mov.Type).
		Str("product_id", mov.ProductID).
		Str("quantity", qty.String()).
		Str("stock", newStock.String()).
		Msg("movimiento registrado")
	return mov, nil
}

// Validate aplica las mismas reglas que RecordMovement sin persistir nada. Sirve para
// completar los errores de un formulario que ya falló al interpretar algún campo.
func (uc *RegisterMovementUseCase) Validate(ctx context.Context, in MovementInputDTO) (domain.FieldErrors, error) {
	errs, _, err := uc.validate(ctx, in)
	return errs, err
}

func (uc *RegisterMovementUseCase) validate(ctx context.Context, in MovementInputDTO) (domain.FieldErrors, *entity.Lot, error) {
	errs := domain.FieldErrors{}

	var lot *entity.Lot
	if in.LotID != "" {
		l, err := uc.lots.GetByID(ctx, in.LotID)
		if err != nil {
			return nil, nil, err
		}
		if l == nil {
			errs.Add(inventory.FieldLot, MsgLotNotFound)
		}
		lot = l
	}

	errs.Merge(inventory.ValidateMovement(inventory.MovementCandidate{
		Type:                   in.Type,
		AdjustmentDirection:    in.AdjustmentDirection,
		ProductID:              in.ProductID,
		SupplierID:             in.SupplierID,
		OriginWarehouseID:      in.OriginWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		Lot:                    lot,
		ExpiryDate:             in.ExpiryDate,
	}))
	// Sin lote encontrado la regla de trazabilidad ya marcó vencimiento; el error de lote basta.
	if in.LotID != "" && lot == nil && in.ExpiryDate == nil {
		delete(errs, inventory.FieldExpiry)
	}

	if err := uc.checkReferences(ctx, in, errs); err != nil {
		return nil, nil, err
	}
	return errs, lot, nil
}

// checkReferences verifica que proveedor y bodegas existan y que el proveedor no esté bloqueado.
func (uc *RegisterMovementUseCase) checkReferences(ctx context.Context, in MovementInputDTO, errs domain.FieldErrors) error {
	if in.SupplierID != "" {
		s, err := uc.suppliers.GetByID(ctx, in.SupplierID)
		if err != nil {
			return err
		}
		switch {
		case s == nil:
			errs.Add(inventory.FieldSupplier, MsgSupplierNotFound)
		case s.IsBlocked():
			errs.Add(inventory.FieldSupplier, MsgSupplierBlocked)
		}
	}
	for field, id := range map[string]string{
		inventory.FieldOrigin:      in.OriginWarehouseID,
		inventory.FieldDestination: in.DestinationWarehouseID,
	} {
		if id == "" || errs.Has(field) {
			continue
		}
		w, err := uc.warehouses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if w == nil {
			errs.Add(field, MsgWarehouseNotFound)
		}
	}
	return nil
}

// checkSufficient rechaza un delta negativo que deje el producto o el lote bajo cero.
func checkSufficient(product *entity.Product, lot *entity.Lot, delta decimal.Decimal) domain.FieldErrors {
	if !delta.IsNegative() {
		return nil
	}
	errs := domain.FieldErrors{}
	if product.CurrentStock.Add(delta).IsNegative() {
		errs.Add(inventory.FieldQuantity, fmt.Sprintf(MsgInsufficientStock, product.CurrentStock.String()))
	}
	if lot != nil && lot.Available.Add(delta).IsNegative() {
		errs.Add(inventory.FieldLot, fmt.Sprintf(MsgLotInsufficient, lot.Available.String()))
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
