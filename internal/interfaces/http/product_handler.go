package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

var (
	defaultConversion = decimal.NewFromInt(1)
	defaultTaxRate    = decimal.NewFromInt(19)
)

// ProductHandler páginas HTML del catálogo de productos.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	movements *inventory.MovementUseCase
	pages     *Pages
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, movements *inventory.MovementUseCase, pages *Pages) *ProductHandler {
	return &ProductHandler{uc: uc, movements: movements, pages: pages}
}

// productForm lee el formulario de producto. Los errores de formato numérico van a errs.
func productForm(c *fiber.Ctx, errs domain.FieldErrors) dto.ProductRequest {
	return dto.ProductRequest{
		SKU:              formString(c, "sku"),
		EAN:              formString(c, "ean_upc"),
		Name:             formString(c, "nombre"),
		Description:      formString(c, "descripcion"),
		Category:         formString(c, "categoria"),
		Brand:            formString(c, "marca"),
		Model:            formString(c, "modelo"),
		UOMPurchase:      formString(c, "uom_compra"),
		UOMSale:          formString(c, "uom_venta"),
		ConversionFactor: formDecimalDefault(c, "factor_conversion", defaultConversion, errs),
		StandardCost:     formDecimal(c, "costo_estandar", errs),
		SalePrice:        formDecimal(c, "precio_venta", errs),
		TaxRate:          formDecimalDefault(c, "impuesto_iva", defaultTaxRate, errs),
		MinStock:         formDecimal(c, "stock_minimo", errs),
		MaxStock:         formDecimal(c, "stock_maximo", errs),
		ReorderPoint:     formOptDecimal(c, "punto_reorden", errs),
		Perishable:       formBool(c, "perishable"),
		LotTracked:       formBool(c, "control_por_lote"),
		SerialTracked:    formBool(c, "control_por_serie"),
		ImageURL:         formString(c, "imagen_url"),
		DatasheetURL:     formString(c, "ficha_tecnica_url"),
	}
}

func (h *ProductHandler) listData(c *fiber.Ctx) (fiber.Map, error) {
	list, err := h.uc.List(c.UserContext(), c.Query("buscar"), pageFromQuery(c))
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Title":     "Productos",
		"Products":  list.Items,
		"Page":      list.Page,
		"PageSizes": dto.PageSizes,
		"Query":     filterQuery(c, "buscar", "pp"),
		"Search":    c.Query("buscar"),
		"UOMs":      entity.UnitsOfMeasure,
		"Form":      dto.ProductRequest{ConversionFactor: defaultConversion, TaxRate: defaultTaxRate},
	}, nil
}

// List GET /productos: listado, búsqueda, paginación y formulario de alta. ?export=xlsx descarga la planilla.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if wantsExport(c) {
		tbl, err := h.uc.ExportTable(c.UserContext(), c.Query("buscar"))
		if err != nil {
			return h.pages.fail(c, err)
		}
		return h.pages.sendTable(c, tbl, "productos")
	}
	data, err := h.listData(c)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "products/list", data)
}

// Create POST /productos
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	errs := domain.FieldErrors{}
	in := productForm(c, errs)
	var out *dto.ProductResponse
	var err error
	if errs.Empty() {
		out, err = h.uc.Create(c.UserContext(), in)
	}
	if err == nil && errs.Empty() {
		h.pages.flash(c, "Producto "+out.SKU+" creado.")
		return c.Redirect("/productos")
	}
	if fe, ok := asFieldErrors(err); ok {
		errs.Merge(fe)
	} else if err != nil {
		return h.pages.fail(c, err)
	}
	data, lerr := h.listData(c)
	if lerr != nil {
		return h.pages.fail(c, lerr)
	}
	data["Form"] = in
	data["Errors"] = errs
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "products/list", data)
}

// Detail GET /productos/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p, err := h.uc.GetByID(ctx, c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if p == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	stock, err := h.uc.StockByWarehouse(ctx, p.ID)
	if err != nil {
		return h.pages.fail(c, err)
	}
	_, ledger, consistent, err := h.movements.VerifyProjection(ctx, p.ID)
	if err != nil {
		return h.pages.fail(c, err)
	}
	if !consistent {
		h.pages.log.Warn().Str("product_id", p.ID).Str("stock", p.CurrentStock.String()).Str("libro", ledger).Msg("stock proyectado difiere del libro")
	}
	return h.pages.render(c, "products/detail", fiber.Map{
		"Title":      p.Name,
		"Product":    p,
		"Stock":      stock,
		"Consistent": consistent,
		"Ledger":     ledger,
	})
}

// EditPage GET /productos/:id/editar
func (h *ProductHandler) EditPage(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if p == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	return h.pages.render(c, "products/edit", fiber.Map{
		"Title": "Editar " + p.SKU,
		"ID":    p.ID,
		"Form":  productRequestFrom(p),
		"UOMs":  entity.UnitsOfMeasure,
	})
}

// Update POST /productos/:id/editar
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	errs := domain.FieldErrors{}
	in := productForm(c, errs)
	var err error
	if errs.Empty() {
		_, err = h.uc.Update(c.UserContext(), id, in)
	}
	if err == nil && errs.Empty() {
		h.pages.flash(c, "Producto actualizado.")
		return c.Redirect("/productos/" + id)
	}
	if fe, ok := asFieldErrors(err); ok {
		errs.Merge(fe)
	} else if err != nil {
		return h.pages.fail(c, err)
	}
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "products/edit", fiber.Map{
		"Title":  "Editar producto",
		"ID":     id,
		"Form":   in,
		"Errors": errs,
		"UOMs":   entity.UnitsOfMeasure,
	})
}

// Delete POST /productos/:id/eliminar
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, domain.ErrConflict) {
		h.pages.flash(c, "El producto tiene movimientos registrados y no puede eliminarse.")
		return c.Redirect("/productos/" + c.Params("id"))
	}
	if err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Producto eliminado.")
	return c.Redirect("/productos")
}

func productRequestFrom(p *dto.ProductResponse) dto.ProductRequest {
	return dto.ProductRequest{
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
	}
}
