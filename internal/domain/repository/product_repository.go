package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetByEAN(ctx context.Context, ean string) (*entity.Product, error)
	// Update no modifica CurrentStock ni AverageCost (se manejan vía movimientos).
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error)
	// ListLowStock productos con stock actual <= punto de reorden (o stock mínimo si no tiene).
	ListLowStock(ctx context.Context) ([]*entity.Product, error)

	// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// AddStock aplica delta de forma atómica y devuelve el stock resultante.
	AddStock(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
	UpdateAverageCost(ctx context.Context, id string, cost decimal.Decimal) error
}
