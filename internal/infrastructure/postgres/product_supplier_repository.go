package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

var _ repository.ProductSupplierRepository = (*ProductSupplierRepo)(nil)

// ProductSupplierRepo asociaciones producto-proveedor sobre PostgreSQL.
type ProductSupplierRepo struct {
	q Querier
}

// NewProductSupplierRepository construye el adaptador.
func NewProductSupplierRepository(q Querier) *ProductSupplierRepo {
	return &ProductSupplierRepo{q: q}
}

const productSupplierSelect = `
	SELECT ps.id, ps.product_id, ps.supplier_id, ps.cost, ps.lead_time_days, ps.min_lot, ps.discount_pct,
		ps.preferred, p.sku, p.name, s.legal_name, ps.created_at, ps.updated_at
	FROM product_suppliers ps
	JOIN products p ON p.id = ps.product_id
	JOIN suppliers s ON s.id = ps.supplier_id`

func scanProductSupplier(row pgx.Row) (*entity.ProductSupplier, error) {
	var ps entity.ProductSupplier
	err := row.Scan(&ps.ID, &ps.ProductID, &ps.SupplierID, &ps.Cost, &ps.LeadTimeDays, &ps.MinLot, &ps.DiscountPct,
		&ps.Preferred, &ps.ProductSKU, &ps.ProductName, &ps.SupplierName, &ps.CreatedAt, &ps.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

// Create persiste la asociación. El par producto-proveedor repetido devuelve domain.ErrDuplicate.
func (r *ProductSupplierRepo) Create(ctx context.Context, ps *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (id, product_id, supplier_id, cost, lead_time_days, min_lot, discount_pct,
			preferred, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		ps.ID, ps.ProductID, ps.SupplierID, ps.Cost, ps.LeadTimeDays, ps.MinLot, ps.DiscountPct,
		ps.Preferred, ps.CreatedAt, ps.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product supplier: %w", err)
	}
	return nil
}

func (r *ProductSupplierRepo) getOne(ctx context.Context, op, tail string, args ...any) (*entity.ProductSupplier, error) {
	ps, err := scanProductSupplier(r.q.QueryRow(ctx, productSupplierSelect+` `+tail, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// Get asociación de un producto con un proveedor.
func (r *ProductSupplierRepo) Get(ctx context.Context, productID, supplierID string) (*entity.ProductSupplier, error) {
	return r.getOne(ctx, "get product supplier", `WHERE ps.product_id = $1 AND ps.supplier_id = $2`, productID, supplierID)
}

// GetPreferred la preferente; si no hay, la de menor costo.
func (r *ProductSupplierRepo) GetPreferred(ctx context.Context, productID string) (*entity.ProductSupplier, error) {
	return r.getOne(ctx, "get preferred supplier",
		`WHERE ps.product_id = $1 AND s.status <> 'BLOQUEADO' ORDER BY ps.preferred DESC, ps.cost ASC LIMIT 1`, productID)
}

// Delete quita la asociación.
func (r *ProductSupplierRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySupplier asociaciones del proveedor ordenadas por nombre de producto.
func (r *ProductSupplierRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.ProductSupplier, error) {
	rows, err := r.q.Query(ctx, productSupplierSelect+` WHERE ps.supplier_id = $1 ORDER BY p.name`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list product suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSupplier
	for rows.Next() {
		ps, err := scanProductSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product supplier: %w", err)
		}
		list = append(list, ps)
	}
	return list, rows.Err()
}
