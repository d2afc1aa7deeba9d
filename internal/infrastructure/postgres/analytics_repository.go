package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// signedQuantity cantidad con signo según tipo (TRANSFERENCIA aporta 0).
const signedQuantity = `CASE
	WHEN m.type = 'INGRESO' THEN m.quantity
	WHEN m.type IN ('SALIDA', 'DEVOLUCION') THEN -m.quantity
	WHEN m.type = 'AJUSTE' AND m.adjustment_direction = '-' THEN -m.quantity
	WHEN m.type = 'AJUSTE' THEN m.quantity
	ELSE 0 END`

// AnalyticsRepo consultas de solo lectura para el resumen del inicio.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetMovementTotals agrupa por tipo los movimientos con created_at en [start, end).
func (r *AnalyticsRepo) GetMovementTotals(ctx context.Context, start, end time.Time) ([]repository.MovementTypeTotal, error) {
	const query = `
	SELECT m.type, COUNT(*), COALESCE(SUM(m.quantity), 0)
	FROM movements m
	WHERE m.created_at >= $1 AND m.created_at < $2
	GROUP BY m.type
	ORDER BY m.type`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMovementTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.MovementTypeTotal
	for rows.Next() {
		var row repository.MovementTypeTotal
		if err := rows.Scan(&row.Type, &row.Count, &row.Quantity); err != nil {
			return nil, fmt.Errorf("analytics.GetMovementTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los `limit` productos con más unidades movidas en el período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductActivity, error) {
	query := `
	SELECT
	    p.id,
	    p.sku,
	    p.name,
	    COUNT(*)                       AS movements,
	    SUM(m.quantity)                AS units,
	    SUM(` + signedQuantity + `)    AS net
	FROM movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.created_at >= $1 AND m.created_at < $2
	GROUP BY p.id, p.sku, p.name
	ORDER BY units DESC, p.sku
	LIMIT $3`

	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductActivity{}
	for rows.Next() {
		var row repository.ProductActivity
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.Movements, &row.Units, &row.Net); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	return results, nil
}

// GetStockValuation valoriza el stock positivo a costo promedio.
func (r *AnalyticsRepo) GetStockValuation(ctx context.Context) (repository.StockValuation, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COALESCE(SUM(GREATEST(current_stock, 0)), 0),
	    COALESCE(SUM(GREATEST(current_stock, 0) * average_cost), 0)
	FROM products`

	var v repository.StockValuation
	if err := r.q.QueryRow(ctx, query).Scan(&v.Products, &v.Units, &v.TotalValue); err != nil {
		return repository.StockValuation{}, fmt.Errorf("analytics.GetStockValuation: %w", err)
	}
	return v, nil
}
