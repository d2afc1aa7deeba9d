package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// ReplenishmentUseCase arma la lista de reposición a partir de la alerta de stock bajo.
type ReplenishmentUseCase struct {
	products repository.ProductRepository
	sourcing repository.ProductSupplierRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	products repository.ProductRepository,
	sourcing repository.ProductSupplierRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products, sourcing: sourcing}
}

var idealFactor = decimal.NewFromFloat(1.5)

// GenerateReplenishmentList devuelve los productos en alerta de stock bajo con la cantidad
// sugerida de pedido. El stock objetivo es el stock máximo si está definido; si no, 1,5 veces
// el umbral de alerta. La cantidad se redondea hacia arriba al lote mínimo del proveedor preferente.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	low, err := uc.products.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))

	for _, p := range low {
		threshold := p.AlertThreshold()
		target := threshold.Mul(idealFactor)
		if p.MaxStock.IsPositive() {
			target = p.MaxStock
		}
		qty := target.Sub(p.CurrentStock)
		if qty.IsNegative() {
			qty = decimal.Zero
		}

		s := dto.ReplenishmentSuggestionDTO{
			ProductID:    p.ID,
			SKU:          p.SKU,
			ProductName:  p.Name,
			CurrentStock: p.CurrentStock,
			Threshold:    threshold,
			UnitCost:     p.StandardCost,
		}

		link, err := uc.sourcing.GetPreferred(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			s.SupplierID = link.SupplierID
			s.SupplierName = link.SupplierName
			s.LeadTimeDays = link.LeadTimeDays
			s.UnitCost = link.NetCost()
			if link.MinLot.IsPositive() && qty.IsPositive() {
				qty = qty.Div(link.MinLot).Ceil().Mul(link.MinLot)
			}
		}

		s.SuggestedOrderQty = qty
		s.EstimatedOrderCost = qty.Mul(s.UnitCost).Round(2)
		suggestions = append(suggestions, s)
	}

	// Primero el mayor déficit bajo el umbral; a igual déficit, el de menor stock.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.Threshold.Sub(a.CurrentStock)
		defB := b.Threshold.Sub(b.CurrentStock)
		if !defA.Equal(defB) {
			return defA.GreaterThan(defB)
		}
		return a.CurrentStock.LessThan(b.CurrentStock)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
