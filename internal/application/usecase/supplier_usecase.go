package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/application/validation"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
	"github.com/jhoicas/dulceria-lilis/pkg/rut"
)

// DefaultCountry país por defecto de los proveedores.
const DefaultCountry = "Chile"

// SupplierUseCase casos de uso de proveedores y sus productos asociados.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	sourcing    repository.ProductSupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	sourcing repository.ProductSupplierRepository,
	productRepo repository.ProductRepository,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, sourcing: sourcing, productRepo: productRepo}
}

// validateSupplier valida formato, dígito verificador del RUT y unicidad de RUT y email.
// Devuelve el RUT normalizado.
func (uc *SupplierUseCase) validateSupplier(ctx context.Context, selfID string, in *dto.SupplierRequest) (domain.FieldErrors, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.LegalName = strings.TrimSpace(in.LegalName)
	if in.Country == "" {
		in.Country = DefaultCountry
	}
	if in.Status == "" {
		in.Status = entity.SupplierActive
	}
	errs := validation.Struct(*in)

	if in.RUT != "" {
		normalized, err := rut.Normalize(in.RUT)
		switch {
		case errors.Is(err, rut.ErrCheckDigit):
			errs.Add("rut_nif", "El dígito verificador del RUT no es válido.")
		case err != nil:
			errs.Add("rut_nif", "RUT inválido. Use el formato 12.345.678-5.")
		default:
			in.RUT = normalized
			existing, err := uc.repo.GetByRUT(ctx, normalized)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != selfID {
				errs.Add("rut_nif", "Ya existe un proveedor con este RUT.")
			}
		}
	}
	if in.Email != "" && !errs.Has("email") {
		existing, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != selfID {
			errs.Add("email", "Ya existe un proveedor con este email.")
		}
	}
	return errs, nil
}

// Create crea un proveedor. Un RUT con dígito verificador incorrecto se rechaza antes de persistir.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	errs, err := uc.validateSupplier(ctx, "", &in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	now := time.Now()
	s := &entity.Supplier{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	applySupplierRequest(s, in)
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s, nil), nil
}

// GetByID obtiene el proveedor con sus productos asociados (nil si no existe).
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	links, err := uc.sourcing.ListBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s, links), nil
}

// Update reemplaza los datos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	errs, err := uc.validateSupplier(ctx, id, &in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	applySupplierRequest(s, in)
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s, nil), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista proveedores filtrando por RUT/razón social y estado.
func (uc *SupplierUseCase) List(ctx context.Context, search, status string, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page = page.Normalize()
	list, total, err := uc.repo.List(ctx, repository.SupplierFilter{
		Search: strings.TrimSpace(search),
		Status: status,
		Page:   repository.Page{Limit: page.PerPage, Offset: page.Offset()},
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s, nil))
	}
	return &dto.SupplierListResponse{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// ListAll todos los proveedores que calzan con el filtro (exportación y selectores).
func (uc *SupplierUseCase) ListAll(ctx context.Context, search, status string) ([]dto.SupplierResponse, error) {
	list, _, err := uc.repo.List(ctx, repository.SupplierFilter{Search: strings.TrimSpace(search), Status: status})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s, nil))
	}
	return items, nil
}

// ExportTable planilla de proveedores filtrada por búsqueda y estado.
func (uc *SupplierUseCase) ExportTable(ctx context.Context, search, status string) (export.Table, error) {
	list, _, err := uc.repo.List(ctx, repository.SupplierFilter{Search: strings.TrimSpace(search), Status: status})
	if err != nil {
		return export.Table{}, err
	}
	return export.Build("Proveedores", export.SupplierColumns, list), nil
}

// AddProduct asocia un producto al proveedor. El par producto-proveedor es único.
func (uc *SupplierUseCase) AddProduct(ctx context.Context, supplierID string, in dto.ProductSupplierRequest) (*dto.ProductSupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.LeadTimeDays == 0 {
		in.LeadTimeDays = 7
	}
	if in.MinLot.IsZero() {
		in.MinLot = decimalOne
	}
	errs := validation.Struct(in)
	if in.ProductID != "" && !errs.Has("producto") {
		p, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			errs.Add("producto", "El producto no existe.")
		} else {
			existing, err := uc.sourcing.Get(ctx, in.ProductID, supplierID)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				errs.Add("producto", "El producto ya está asociado a este proveedor.")
			}
		}
	}
	if !errs.Empty() {
		return nil, errs
	}
	now := time.Now()
	ps := &entity.ProductSupplier{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		SupplierID:   supplierID,
		Cost:         in.Cost,
		LeadTimeDays: in.LeadTimeDays,
		MinLot:       in.MinLot,
		DiscountPct:  in.DiscountPct,
		Preferred:    in.Preferred,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.sourcing.Create(ctx, ps); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.FieldErrors{"producto": {"El producto ya está asociado a este proveedor."}}
		}
		return nil, err
	}
	resp := toProductSupplierResponse(ps)
	return &resp, nil
}

// RemoveProduct elimina una asociación producto-proveedor.
func (uc *SupplierUseCase) RemoveProduct(ctx context.Context, linkID string) error {
	return uc.sourcing.Delete(ctx, linkID)
}

func applySupplierRequest(s *entity.Supplier, in dto.SupplierRequest) {
	s.RUT = in.RUT
	s.LegalName = in.LegalName
	s.TradeName = in.TradeName
	s.Email = in.Email
	s.Phone = in.Phone
	s.Website = in.Website
	s.Address = in.Address
	s.City = in.City
	s.Country = in.Country
	s.PaymentTerms = in.PaymentTerms
	s.Currency = in.Currency
	s.ContactName = in.ContactName
	s.ContactEmail = in.ContactEmail
	s.ContactPhone = in.ContactPhone
	s.Status = in.Status
	s.Notes = in.Notes
}

func toSupplierResponse(s *entity.Supplier, links []*entity.ProductSupplier) *dto.SupplierResponse {
	out := &dto.SupplierResponse{
		ID:           s.ID,
		RUT:          s.RUT,
		LegalName:    s.LegalName,
		TradeName:    s.TradeName,
		Email:        s.Email,
		Phone:        s.Phone,
		Website:      s.Website,
		Address:      s.Address,
		City:         s.City,
		Country:      s.Country,
		PaymentTerms: s.PaymentTerms,
		Currency:     s.Currency,
		ContactName:  s.ContactName,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Status:       s.Status,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	for _, l := range links {
		out.Products = append(out.Products, toProductSupplierResponse(l))
	}
	return out
}

func toProductSupplierResponse(l *entity.ProductSupplier) dto.ProductSupplierResponse {
	return dto.ProductSupplierResponse{
		ID:           l.ID,
		ProductID:    l.ProductID,
		ProductSKU:   l.ProductSKU,
		ProductName:  l.ProductName,
		Cost:         l.Cost,
		NetCost:      l.NetCost(),
		LeadTimeDays: l.LeadTimeDays,
		MinLot:       l.MinLot,
		DiscountPct:  l.DiscountPct,
		Preferred:    l.Preferred,
	}
}
