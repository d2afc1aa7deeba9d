package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/application/validation"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
}

// NewProductUseCase construye el caso de uso. stockRepo puede ser nil (sin detalle por bodega).
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo}
}

// normalizeProduct limpia espacios y pasa el SKU a mayúsculas antes de validar.
func normalizeProduct(in *dto.ProductRequest) {
	in.SKU = strings.ToUpper(strings.TrimSpace(in.SKU))
	in.EAN = strings.TrimSpace(in.EAN)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.UOMPurchase == "" {
		in.UOMPurchase = entity.UOMUnidad
	}
	if in.UOMSale == "" {
		in.UOMSale = entity.UOMUnidad
	}
}

// validateProduct reglas de formato más unicidad de SKU y EAN (excluyendo el propio producto).
func (uc *ProductUseCase) validateProduct(ctx context.Context, selfID string, in dto.ProductRequest) (domain.FieldErrors, error) {
	errs := validation.Struct(in)
	if in.MaxStock.IsPositive() && in.MaxStock.LessThan(in.MinStock) {
		errs.Add("stock_maximo", "El stock máximo no puede ser menor al mínimo.")
	}
	if in.SKU != "" && !errs.Has("sku") {
		existing, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != selfID {
			errs.Add("sku", "Ya existe un producto con este SKU.")
		}
	}
	if in.EAN != "" && !errs.Has("ean_upc") {
		existing, err := uc.repo.GetByEAN(ctx, in.EAN)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != selfID {
			errs.Add("ean_upc", "Ya existe un producto con este EAN/UPC.")
		}
	}
	return errs, nil
}

// Create crea un producto. Stock actual y costo promedio parten en 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	normalizeProduct(&in)
	errs, err := uc.validateProduct(ctx, "", in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	now := time.Now()
	p := &entity.Product{
		ID:           uuid.New().String(),
		AverageCost:  decimal.Zero,
		CurrentStock: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyProductRequest(p, in)
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update reemplaza los datos editables. No toca stock actual ni costo promedio.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	normalizeProduct(&in)
	errs, err := uc.validateProduct(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	applyProductRequest(p, in)
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista productos con búsqueda por SKU o nombre.
func (uc *ProductUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page = page.Normalize()
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Search: strings.TrimSpace(search),
		Page:   repository.Page{Limit: page.PerPage, Offset: page.Offset()},
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductResponses(list), Page: dto.NewPageResponse(page, total)}, nil
}

// ListAll lista todos los productos que calzan con la búsqueda (exportación y selectores).
func (uc *ProductUseCase) ListAll(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	list, _, err := uc.repo.List(ctx, repository.ProductFilter{Search: strings.TrimSpace(search)})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ExportTable planilla de productos con el mismo filtro del listado.
func (uc *ProductUseCase) ExportTable(ctx context.Context, search string) (export.Table, error) {
	list, _, err := uc.repo.List(ctx, repository.ProductFilter{Search: strings.TrimSpace(search)})
	if err != nil {
		return export.Table{}, err
	}
	return export.Build("Productos", export.ProductColumns, list), nil
}

// OptionsBySupplier productos asociados a un proveedor para el selector AJAX.
func (uc *ProductUseCase) OptionsBySupplier(ctx context.Context, supplierID string) ([]dto.ProductOption, error) {
	list, err := uc.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductOption, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductOption{ID: p.ID, Name: p.Name, SKU: p.SKU})
	}
	return out, nil
}

// StockByWarehouse stock del producto en cada bodega.
func (uc *ProductUseCase) StockByWarehouse(ctx context.Context, productID string) ([]dto.WarehouseStockResponse, error) {
	if uc.stockRepo == nil {
		return nil, nil
	}
	list, err := uc.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseStockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.WarehouseStockResponse{WarehouseID: s.WarehouseID, WarehouseCode: s.WarehouseCode, Quantity: s.Quantity})
	}
	return out, nil
}

func applyProductRequest(p *entity.Product, in dto.ProductRequest) {
	p.SKU = in.SKU
	p.EAN = in.EAN
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Brand = in.Brand
	p.Model = in.Model
	p.UOMPurchase = in.UOMPurchase
	p.UOMSale = in.UOMSale
	p.ConversionFactor = in.ConversionFactor
	p.StandardCost = in.StandardCost
	p.SalePrice = in.SalePrice
	p.TaxRate = in.TaxRate
	p.MinStock = in.MinStock
	p.MaxStock = in.MaxStock
	p.ReorderPoint = in.ReorderPoint
	p.Perishable = in.Perishable
	p.LotTracked = in.LotTracked
	p.SerialTracked = in.SerialTracked
	p.ImageURL = in.ImageURL
	p.DatasheetURL = in.DatasheetURL
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		SKU:              p.SKU,
		EAN:              p.EAN,
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		Brand:            p.Brand,
		Model:            p.Model,
		UOMPurchase:      p.UOMPurchase,
		UOMSale:          p.UOMSale,
		ConversionFactor: p.ConversionFactor,
		StandardCost:     p.StandardCost,
		AverageCost:      p.AverageCost,
		SalePrice:        p.SalePrice,
		TaxRate:          p.TaxRate,
		MinStock:         p.MinStock,
		MaxStock:         p.MaxStock,
		ReorderPoint:     p.ReorderPoint,
		Perishable:       p.Perishable,
		LotTracked:       p.LotTracked,
		SerialTracked:    p.SerialTracked,
		ImageURL:         p.ImageURL,
		DatasheetURL:     p.DatasheetURL,
		CurrentStock:     p.CurrentStock,
		LowStock:         p.IsLowStock(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
