package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/validation"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// LotUseCase casos de uso de lotes.
type LotUseCase struct {
	repo        repository.LotRepository
	productRepo repository.ProductRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository, productRepo repository.ProductRepository) *LotUseCase {
	return &LotUseCase{repo: repo, productRepo: productRepo}
}

func (uc *LotUseCase) validate(ctx context.Context, in *dto.LotRequest) (domain.FieldErrors, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	errs := validation.Struct(*in)
	if in.ProductID != "" {
		p, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			errs.Add("producto", "El producto no existe.")
		}
	}
	return errs, nil
}

// Create registra un lote de un producto.
func (uc *LotUseCase) Create(ctx context.Context, in dto.LotRequest) (*dto.LotResponse, error) {
	errs, err := uc.validate(ctx, &in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	now := time.Now()
	l := &entity.Lot{
		ID:         uuid.New().String(),
		Code:       in.Code,
		ProductID:  in.ProductID,
		ExpiryDate: in.ExpiryDate,
		Available:  in.Available,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLotResponse(l), nil
}

// GetByID obtiene un lote (nil si no existe).
func (uc *LotUseCase) GetByID(ctx context.Context, id string) (*dto.LotResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil || l == nil {
		return nil, err
	}
	return toLotResponse(l), nil
}

// Update modifica código, producto, vencimiento y cantidad disponible.
func (uc *LotUseCase) Update(ctx context.Context, id string, in dto.LotRequest) (*dto.LotResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	errs, err := uc.validate(ctx, &in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	l.Code = in.Code
	l.ProductID = in.ProductID
	l.ExpiryDate = in.ExpiryDate
	l.Available = in.Available
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLotResponse(l), nil
}

// Delete elimina un lote.
func (uc *LotUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List todos los lotes, o los de un producto si productID no está vacío.
func (uc *LotUseCase) List(ctx context.Context, productID string) ([]dto.LotResponse, error) {
	var (
		list []*entity.Lot
		err  error
	)
	if productID != "" {
		list, err = uc.repo.ListByProduct(ctx, productID, false)
	} else {
		list, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLotResponse(l))
	}
	return out, nil
}

// AvailableByProduct lotes con cantidad disponible > 0, ordenados por código (selector AJAX).
func (uc *LotUseCase) AvailableByProduct(ctx context.Context, productID string) ([]dto.LotOption, error) {
	list, err := uc.repo.ListByProduct(ctx, productID, true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotOption, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LotOption{ID: l.ID, Code: l.Code, Description: l.Description(), Available: l.Available})
	}
	return out, nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	return &dto.LotResponse{
		ID:         l.ID,
		Code:       l.Code,
		ProductID:  l.ProductID,
		ExpiryDate: l.ExpiryDate,
		Available:  l.Available,
	}
}
