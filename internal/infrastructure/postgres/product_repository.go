package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.sku, COALESCE(p.ean, ''), p.name, p.description, p.category, p.brand, p.model,
	p.uom_purchase, p.uom_sale, p.conversion_factor, p.standard_cost, p.average_cost, p.sale_price,
	p.tax_rate, p.min_stock, p.max_stock, p.reorder_point, p.perishable, p.lot_tracked,
	p.serial_tracked, p.image_url, p.datasheet_url, p.current_stock, p.created_at, p.updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.EAN, &p.Name, &p.Description, &p.Category, &p.Brand, &p.Model,
		&p.UOMPurchase, &p.UOMSale, &p.ConversionFactor, &p.StandardCost, &p.AverageCost, &p.SalePrice,
		&p.TaxRate, &p.MinStock, &p.MaxStock, &p.ReorderPoint, &p.Perishable, &p.LotTracked,
		&p.SerialTracked, &p.ImageURL, &p.DatasheetURL, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto. Stock y costo promedio inician en 0.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, ean, name, description, category, brand, model, uom_purchase, uom_sale,
			conversion_factor, standard_cost, average_cost, sale_price, tax_rate, min_stock, max_stock, reorder_point,
			perishable, lot_tracked, serial_tracked, image_url, datasheet_url, current_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, 0, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, nullIfEmpty(&p.EAN), p.Name, p.Description, p.Category, p.Brand, p.Model, p.UOMPurchase, p.UOMSale,
		p.ConversionFactor, p.StandardCost, p.SalePrice, p.TaxRate, p.MinStock, p.MaxStock, p.ReorderPoint,
		p.Perishable, p.LotTracked, p.SerialTracked, p.ImageURL, p.DatasheetURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "get product", "p.id = $1", id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, "get product by sku", "p.sku = $1", sku)
}

// GetByEAN obtiene un producto por código EAN/UPC.
func (r *ProductRepo) GetByEAN(ctx context.Context, ean string) (*entity.Product, error) {
	return r.getOne(ctx, "get product by ean", "p.ean = $1", ean)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "get product for update", "p.id = $1 FOR UPDATE", id)
}

// Update actualiza un producto existente. No toca current_stock ni average_cost.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, ean = $3, name = $4, description = $5, category = $6, brand = $7, model = $8,
			uom_purchase = $9, uom_sale = $10, conversion_factor = $11, standard_cost = $12, sale_price = $13,
			tax_rate = $14, min_stock = $15, max_stock = $16, reorder_point = $17, perishable = $18,
			lot_tracked = $19, serial_tracked = $20, image_url = $21, datasheet_url = $22, updated_at = $23
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, nullIfEmpty(&p.EAN), p.Name, p.Description, p.Category, p.Brand, p.Model,
		p.UOMPurchase, p.UOMSale, p.ConversionFactor, p.StandardCost, p.SalePrice,
		p.TaxRate, p.MinStock, p.MaxStock, p.ReorderPoint, p.Perishable,
		p.LotTracked, p.SerialTracked, p.ImageURL, p.DatasheetURL, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto. Con movimientos registrados devuelve domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por subcadena de SKU o nombre, ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	where := `($1 = '' OR p.sku ILIKE $2 OR p.name ILIKE $2)`
	pattern := likePattern(f.Search)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products p WHERE `+where, f.Search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products p WHERE `+where+` ORDER BY p.name, p.sku LIMIT $3 OFFSET $4`,
		f.Search, pattern, limitArg(f.Limit), f.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	list, err := collectProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan products: %w", err)
	}
	return list, total, nil
}

// ListBySupplier productos asociados al proveedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products p JOIN product_suppliers ps ON ps.product_id = p.id
		WHERE ps.supplier_id = $1 ORDER BY p.name`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list products by supplier: %w", err)
	}
	list, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return list, nil
}

// ListLowStock productos con stock actual <= punto de reorden (o stock mínimo).
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products p
		WHERE p.current_stock <= COALESCE(p.reorder_point, p.min_stock)
		ORDER BY p.current_stock - COALESCE(p.reorder_point, p.min_stock), p.name`)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	list, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return list, nil
}

// AddStock suma delta a current_stock en una sola sentencia y devuelve el valor resultante.
func (r *ProductRepo) AddStock(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(ctx,
		`UPDATE products SET current_stock = current_stock + $2, updated_at = now() WHERE id = $1 RETURNING current_stock`,
		id, delta,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("add product stock: %w", err)
	}
	return stock, nil
}

// UpdateAverageCost actualiza solo el costo promedio (usado por el motor de inventario).
func (r *ProductRepo) UpdateAverageCost(ctx context.Context, id string, cost decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET average_cost = $2, updated_at = now() WHERE id = $1`, id, cost)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}
