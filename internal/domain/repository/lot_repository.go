package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// LotRepository puerto de persistencia para Lot.
type LotRepository interface {
	Create(ctx context.Context, l *entity.Lot) error
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
	// GetForUpdate bloquea la fila del lote hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Lot, error)
	Update(ctx context.Context, l *entity.Lot) error
	Delete(ctx context.Context, id string) error
	// ListByProduct ordena por código; onlyAvailable filtra cantidad disponible > 0.
	ListByProduct(ctx context.Context, productID string, onlyAvailable bool) ([]*entity.Lot, error)
	List(ctx context.Context) ([]*entity.Lot, error)
	AddQuantity(ctx context.Context, id string, delta decimal.Decimal) error
}
