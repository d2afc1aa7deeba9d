package repository

import (
	"context"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByRUT(ctx context.Context, rut string) (*entity.Supplier, error)
	// GetByEmail compara sin distinguir mayúsculas.
	GetByEmail(ctx context.Context, email string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, int, error)
}

// ProductSupplierRepository puerto para la asociación producto-proveedor.
type ProductSupplierRepository interface {
	Create(ctx context.Context, ps *entity.ProductSupplier) error
	Get(ctx context.Context, productID, supplierID string) (*entity.ProductSupplier, error)
	Delete(ctx context.Context, id string) error
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.ProductSupplier, error)
	// GetPreferred asociación preferente del producto; si no hay, la de menor costo. Ignora proveedores bloqueados.
	GetPreferred(ctx context.Context, productID string) (*entity.ProductSupplier, error)
}
