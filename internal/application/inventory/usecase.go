package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/application/validation"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// MovementQuery parámetros del listado de movimientos.
type MovementQuery struct {
	Type        string
	ProductName string
	Warehouse   string // texto libre; varios tokens separados por "," o ";"
	dto.PageRequest
}

// MovementUseCase consultas y edición descriptiva del libro de inventario.
type MovementUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements repository.MovementRepository, products repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements, products: products}
}

// ParseWarehouseTokens separa el texto de búsqueda de bodega en tokens no vacíos.
func ParseWarehouseTokens(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// List devuelve una página de movimientos, más recientes primero. Un tipo desconocido se ignora.
func (uc *MovementUseCase) List(ctx context.Context, q MovementQuery) (*dto.MovementListResponse, error) {
	page := q.PageRequest.Normalize()
	f := repository.MovementFilter{
		ProductName:     strings.TrimSpace(q.ProductName),
		WarehouseTokens: ParseWarehouseTokens(q.Warehouse),
		Page:            repository.Page{Limit: page.PerPage, Offset: page.Offset()},
	}
	if entity.IsValidMovementType(q.Type) {
		f.Type = q.Type
	}
	items, total, err := uc.movements.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: out,
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

// ExportTable planilla con todos los movimientos que cumplen el filtro.
func (uc *MovementUseCase) ExportTable(ctx context.Context, q MovementQuery) (export.Table, error) {
	f := repository.MovementFilter{
		ProductName:     strings.TrimSpace(q.ProductName),
		WarehouseTokens: ParseWarehouseTokens(q.Warehouse),
	}
	if entity.IsValidMovementType(q.Type) {
		f.Type = q.Type
	}
	items, _, err := uc.movements.List(ctx, f)
	if err != nil {
		return export.Table{}, err
	}
	return export.Build("Movimientos", export.MovementColumns, items), nil
}

// GetByID devuelve el movimiento o domain.ErrNotFound.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// UpdateDescriptive cambia solo observación, documento de referencia y serie.
// Tipo, cantidad, producto y bodegas no se editan: el stock ya fue proyectado.
func (uc *MovementUseCase) UpdateDescriptive(ctx context.Context, id string, req dto.MovementDescriptiveRequest) (*entity.Movement, error) {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if errs := validation.Struct(req); !errs.Empty() {
		return nil, errs
	}
	if err := uc.movements.UpdateDescriptive(ctx, id,
		strings.TrimSpace(req.Note),
		strings.TrimSpace(req.DocumentRef),
		strings.TrimSpace(req.Serial),
	); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// VerifyProjection compara el stock proyectado del producto con la suma del libro.
// Devuelve ok=false cuando difieren.
func (uc *MovementUseCase) VerifyProjection(ctx context.Context, productID string) (projected, ledger string, ok bool, err error) {
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return "", "", false, err
	}
	if p == nil {
		return "", "", false, domain.ErrNotFound
	}
	sum, err := uc.movements.SumByProduct(ctx, productID)
	if err != nil {
		return "", "", false, err
	}
	return p.CurrentStock.String(), sum.String(), p.CurrentStock.Equal(sum), nil
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Date:           m.CreatedAt,
		Type:           m.Type,
		Direction:      m.AdjustmentDirection,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		ProductSKU:     m.ProductSKU,
		SupplierName:   m.SupplierName,
		Quantity:       m.Quantity,
		SignedQuantity: inventory.StockDelta(m.Type, m.AdjustmentDirection, m.Quantity),
		Origin:         m.OriginLabel(),
		Destination:    m.DestinationLabel(),
		LotCode:        m.LotCode,
		Serial:         m.Serial,
		ExpiryDate:     m.ExpiryDate,
		Username:       m.Username,
		Note:           m.Note,
		DocumentRef:    m.DocumentRef,
	}
}
