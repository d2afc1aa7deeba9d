package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// MovementRepository puerto del libro de inventario. No expone borrado.
type MovementRepository interface {
	// Create inserta el movimiento; CreatedAt lo fija la base de datos.
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	// UpdateDescriptive solo toca observación, documento de referencia y serie.
	UpdateDescriptive(ctx context.Context, id, note, documentRef, serial string) error
	// List ordena por fecha descendente.
	List(ctx context.Context, f MovementFilter) ([]*entity.Movement, int, error)
	// SumByProduct suma con signo todos los movimientos del producto (auditoría de la proyección).
	SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error)
}
