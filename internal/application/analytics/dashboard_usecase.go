// Package analytics resume la actividad del libro de inventario para la página de inicio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

const dashboardTopProducts = 5 // productos en el widget del inicio

// DashboardUseCase genera el resumen del día y del mes en curso.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. GetMovementTotals(hoy)
//  2. GetMovementTotals(mes)
//  3. GetTopProducts(mes, top 5)
//  4. GetStockValuation
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// Hoy: [00:00, mañana 00:00). Mes: [día 1, mañana 00:00).
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		rows []repository.MovementTypeTotal
		err  error
	}
	type topResult struct {
		rows []repository.ProductActivity
		err  error
	}
	type valuationResult struct {
		v   repository.StockValuation
		err error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)
	valCh := make(chan valuationResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetMovementTotals(ctx, todayStart, end)
		todayCh <- totalsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetMovementTotals(ctx, monthStart, end)
		monthCh <- totalsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, end, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.GetStockValuation(ctx)
		valCh <- valuationResult{v, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	val := <-valCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if val.err != nil {
		return nil, fmt.Errorf("dashboard: valorización: %w", val.err)
	}

	products := make([]dto.TopProductDTO, 0, len(top.rows))
	for _, p := range top.rows {
		products = append(products, dto.TopProductDTO{
			ProductID:   p.ProductID,
			SKU:         p.SKU,
			ProductName: p.ProductName,
			Movements:   p.Movements,
			Units:       p.Units,
			Net:         p.Net,
		})
	}

	return &dto.DashboardSummaryDTO{
		Today:        byType(today.rows),
		Month:        byType(month.rows),
		TopProducts:  products,
		ProductCount: val.v.Products,
		StockUnits:   val.v.Units,
		StockValue:   val.v.TotalValue.Round(0),
		DateLabel:    monthLabel(now),
	}, nil
}

// byType devuelve una fila por cada tipo de movimiento, en el orden de los formularios.
// Los tipos sin movimientos quedan en cero.
func byType(rows []repository.MovementTypeTotal) []dto.MovementTypeTotalDTO {
	idx := make(map[string]repository.MovementTypeTotal, len(rows))
	for _, r := range rows {
		idx[r.Type] = r
	}
	out := make([]dto.MovementTypeTotalDTO, 0, len(entity.MovementTypes))
	for _, t := range entity.MovementTypes {
		r, ok := idx[t]
		if !ok {
			r = repository.MovementTypeTotal{Quantity: decimal.Zero}
		}
		out = append(out, dto.MovementTypeTotalDTO{Type: t, Count: r.Count, Quantity: r.Quantity})
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
