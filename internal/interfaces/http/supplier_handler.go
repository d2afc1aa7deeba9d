package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// SupplierHandler páginas HTML de proveedores y sus condiciones de abastecimiento.
type SupplierHandler struct {
	uc       *usecase.SupplierUseCase
	products *usecase.ProductUseCase
	pages    *Pages
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, products *usecase.ProductUseCase, pages *Pages) *SupplierHandler {
	return &SupplierHandler{uc: uc, products: products, pages: pages}
}

func supplierForm(c *fiber.Ctx) dto.SupplierRequest {
	return dto.SupplierRequest{
		RUT:          formString(c, "rut_nif"),
		LegalName:    formString(c, "razon_social"),
		TradeName:    formString(c, "nombre_fantasia"),
		Email:        formString(c, "email"),
		Phone:        formString(c, "telefono"),
		Website:      formString(c, "sitio_web"),
		Address:      formString(c, "direccion"),
		City:         formString(c, "ciudad"),
		Country:      formString(c, "pais"),
		PaymentTerms: formString(c, "condiciones_pago"),
		Currency:     formString(c, "moneda"),
		ContactName:  formString(c, "contacto_principal_nombre"),
		ContactEmail: formString(c, "contacto_principal_email"),
		ContactPhone: formString(c, "contacto_principal_telefono"),
		Status:       formString(c, "estado"),
		Notes:        formString(c, "observaciones"),
	}
}

func supplierChoices(data fiber.Map) fiber.Map {
	data["PaymentTerms"] = entity.PaymentTerms
	data["Currencies"] = entity.Currencies
	data["Statuses"] = entity.SupplierStatuses
	return data
}

func (h *SupplierHandler) listData(c *fiber.Ctx) (fiber.Map, error) {
	list, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("estado"), pageFromQuery(c))
	if err != nil {
		return nil, err
	}
	return supplierChoices(fiber.Map{
		"Title":     "Proveedores",
		"Suppliers": list.Items,
		"Page":      list.Page,
		"PageSizes": dto.PageSizes,
		"Query":     filterQuery(c, "q", "estado", "pp"),
		"Search":    c.Query("q"),
		"Status":    c.Query("estado"),
		"Form": dto.SupplierRequest{
			Country:      "Chile",
			PaymentTerms: entity.PaymentTransfer,
			Currency:     entity.CurrencyCLP,
			Status:       entity.SupplierActive,
		},
	}), nil
}

// List GET /proveedores (?export=xlsx)
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	if wantsExport(c) {
		tbl, err := h.uc.ExportTable(c.UserContext(), c.Query("q"), c.Query("estado"))
		if err != nil {
			return h.pages.fail(c, err)
		}
		return h.pages.sendTable(c, tbl, "proveedores")
	}
	data, err := h.listData(c)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "suppliers/list", data)
}

// Create POST /proveedores
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	in := supplierForm(c)
	out, err := h.uc.Create(c.UserContext(), in)
	if err == nil {
		h.pages.flash(c, "Proveedor "+out.LegalName+" creado.")
		return c.Redirect("/proveedores/" + out.ID)
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	data, lerr := h.listData(c)
	if lerr != nil {
		return h.pages.fail(c, lerr)
	}
	data["Form"] = in
	data["Errors"] = fe
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "suppliers/list", data)
}

func (h *SupplierHandler) detailData(c *fiber.Ctx, id string) (fiber.Map, error) {
	s, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	products, err := h.products.ListAll(c.UserContext(), "")
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Title":    s.LegalName,
		"Supplier": s,
		"Products": products,
		"Link":     dto.ProductSupplierRequest{LeadTimeDays: 7, MinLot: defaultConversion},
	}, nil
}

// Detail GET /proveedores/:id: datos del proveedor y productos asociados.
func (h *SupplierHandler) Detail(c *fiber.Ctx) error {
	data, err := h.detailData(c, c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "suppliers/detail", data)
}

// EditPage GET /proveedores/:id/editar
func (h *SupplierHandler) EditPage(c *fiber.Ctx) error {
	s, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if s == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	return h.pages.render(c, "suppliers/edit", supplierChoices(fiber.Map{
		"Title": "Editar proveedor",
		"ID":    s.ID,
		"Form":  supplierRequestFrom(s),
	}))
}

// Update POST /proveedores/:id/editar
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in := supplierForm(c)
	_, err := h.uc.Update(c.UserContext(), id, in)
	if err == nil {
		h.pages.flash(c, "Proveedor actualizado.")
		return c.Redirect("/proveedores/" + id)
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "suppliers/edit", supplierChoices(fiber.Map{
		"Title":  "Editar proveedor",
		"ID":     id,
		"Form":   in,
		"Errors": fe,
	}))
}

// Delete POST /proveedores/:id/eliminar
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Proveedor eliminado.")
	return c.Redirect("/proveedores")
}

// AddProduct POST /proveedores/:id/productos: asocia un producto con costo, lead time y lote mínimo.
func (h *SupplierHandler) AddProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	errs := domain.FieldErrors{}
	in := dto.ProductSupplierRequest{
		ProductID:    formString(c, "producto"),
		Cost:         formDecimal(c, "costo", errs),
		LeadTimeDays: formInt(c, "lead_time_dias", 7, errs),
		MinLot:       formDecimalDefault(c, "min_lote", defaultConversion, errs),
		DiscountPct:  formOptDecimal(c, "descuento_pct", errs),
		Preferred:    formBool(c, "preferente"),
	}
	if errs.Empty() {
		_, err := h.uc.AddProduct(c.UserContext(), id, in)
		if err == nil {
			h.pages.flash(c, "Producto asociado.")
			return c.Redirect("/proveedores/" + id)
		}
		fe, ok := asFieldErrors(err)
		if !ok {
			return h.pages.fail(c, err)
		}
		errs.Merge(fe)
	}
	data, err := h.detailData(c, id)
	if err != nil {
		return h.pages.fail(c, err)
	}
	data["Link"] = in
	data["Errors"] = errs
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "suppliers/detail", data)
}

// RemoveProduct POST /proveedores/:id/productos/:linkID/eliminar
func (h *SupplierHandler) RemoveProduct(c *fiber.Ctx) error {
	if err := h.uc.RemoveProduct(c.UserContext(), c.Params("linkID")); err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Asociación eliminada.")
	return c.Redirect("/proveedores/" + c.Params("id"))
}

func supplierRequestFrom(s *dto.SupplierResponse) dto.SupplierRequest {
	return dto.SupplierRequest{
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
	}
}
