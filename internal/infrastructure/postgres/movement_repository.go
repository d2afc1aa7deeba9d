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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de inventario sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementSelect = `
	SELECT m.id, m.type, m.adjustment_direction, m.product_id, m.supplier_id, m.origin_warehouse_id,
		m.destination_warehouse_id, m.quantity, m.lot_id, m.serial, m.expiry_date, m.user_id, m.note,
		m.document_ref, m.created_at,
		p.name, p.sku, COALESCE(s.legal_name, ''), COALESCE(wo.code, ''), COALESCE(wo.name, ''),
		COALESCE(wd.code, ''), COALESCE(wd.name, ''), COALESCE(l.code, ''), COALESCE(u.username, '')
	FROM movements m
	JOIN products p ON p.id = m.product_id
	LEFT JOIN suppliers s ON s.id = m.supplier_id
	LEFT JOIN warehouses wo ON wo.id = m.origin_warehouse_id
	LEFT JOIN warehouses wd ON wd.id = m.destination_warehouse_id
	LEFT JOIN lots l ON l.id = m.lot_id
	LEFT JOIN users u ON u.id = m.user_id`

// movementFilter: $1 tipo, $2 patrón de producto, $3 patrones de bodega (cualquiera coincide).
const movementFilter = `
	WHERE ($1 = '' OR m.type = $1)
	  AND ($2 = '' OR p.name ILIKE $2)
	  AND (cardinality($3::text[]) = 0 OR EXISTS (
		SELECT 1 FROM unnest($3::text[]) t
		WHERE wo.code ILIKE t OR wo.name ILIKE t OR wd.code ILIKE t OR wd.name ILIKE t))`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Type, &m.AdjustmentDirection, &m.ProductID, &m.SupplierID, &m.OriginWarehouseID,
		&m.DestinationWarehouseID, &m.Quantity, &m.LotID, &m.Serial, &m.ExpiryDate, &m.UserID, &m.Note,
		&m.DocumentRef, &m.CreatedAt,
		&m.ProductName, &m.ProductSKU, &m.SupplierName, &m.OriginCode, &m.OriginName,
		&m.DestinationCode, &m.DestinationName, &m.LotCode, &m.Username,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta el movimiento; created_at lo asigna la base de datos y se copia en m.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, adjustment_direction, product_id, supplier_id, origin_warehouse_id,
			destination_warehouse_id, quantity, lot_id, serial, expiry_date, user_id, note, document_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.Type, m.AdjustmentDirection, m.ProductID, nullIfEmpty(m.SupplierID), nullIfEmpty(m.OriginWarehouseID),
		nullIfEmpty(m.DestinationWarehouseID), m.Quantity, nullIfEmpty(m.LotID), m.Serial, m.ExpiryDate,
		nullIfEmpty(m.UserID), m.Note, m.DocumentRef,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID movimiento con sus datos relacionados.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// UpdateDescriptive solo toca observación, documento de referencia y serie.
func (r *MovementRepo) UpdateDescriptive(ctx context.Context, id, note, documentRef, serial string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE movements SET note = $2, document_ref = $3, serial = $4 WHERE id = $1`,
		id, note, documentRef, serial,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por tipo, nombre de producto y bodegas; más recientes primero.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	productPattern := ""
	if f.ProductName != "" {
		productPattern = likePattern(f.ProductName)
	}
	warehousePatterns := make([]string, 0, len(f.WarehouseTokens))
	for _, t := range f.WarehouseTokens {
		warehousePatterns = append(warehousePatterns, likePattern(t))
	}
	args := []any{f.Type, productPattern, warehousePatterns}

	var total int
	countQuery := `
		SELECT count(*) FROM movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN warehouses wo ON wo.id = m.origin_warehouse_id
		LEFT JOIN warehouses wd ON wd.id = m.destination_warehouse_id` + movementFilter
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	rows, err := r.q.Query(ctx,
		movementSelect+movementFilter+` ORDER BY m.created_at DESC, m.id LIMIT $4 OFFSET $5`,
		append(args, limitArg(f.Limit), f.Offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// SumByProduct suma con signo los movimientos del producto (TRANSFERENCIA aporta 0).
func (r *MovementRepo) SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE
			WHEN type = 'INGRESO' THEN quantity
			WHEN type IN ('SALIDA', 'DEVOLUCION') THEN -quantity
			WHEN type = 'AJUSTE' AND adjustment_direction = '-' THEN -quantity
			WHEN type = 'AJUSTE' THEN quantity
			ELSE 0 END), 0)
		FROM movements WHERE product_id = $1`, productID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
