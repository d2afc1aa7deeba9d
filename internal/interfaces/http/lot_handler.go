package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
)

// LotHandler páginas HTML de lotes.
type LotHandler struct {
	uc       *usecase.LotUseCase
	products *usecase.ProductUseCase
	pages    *Pages
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase, products *usecase.ProductUseCase, pages *Pages) *LotHandler {
	return &LotHandler{uc: uc, products: products, pages: pages}
}

func lotForm(c *fiber.Ctx, errs domain.FieldErrors) dto.LotRequest {
	return dto.LotRequest{
		Code:       formString(c, "codigo"),
		ProductID:  formString(c, "producto"),
		ExpiryDate: formDate(c, "fecha_vencimiento", errs),
		Available:  formDecimal(c, "cantidad", errs),
	}
}

func (h *LotHandler) renderList(c *fiber.Ctx, form dto.LotRequest, errs domain.FieldErrors) error {
	ctx := c.UserContext()
	productID := c.Query("producto")
	lots, err := h.uc.List(ctx, productID)
	if err != nil {
		return h.pages.fail(c, err)
	}
	products, err := h.products.ListAll(ctx, "")
	if err != nil {
		return h.pages.fail(c, err)
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.SKU + " - " + p.Name
	}
	for i := range lots {
		lots[i].ProductName = names[lots[i].ProductID]
	}
	if form.ProductID == "" {
		form.ProductID = productID
	}
	return h.pages.render(c, "lots/list", fiber.Map{
		"Title":     "Lotes",
		"Lots":      lots,
		"Products":  products,
		"ProductID": productID,
		"Form":      form,
		"Errors":    errs,
	})
}

// List GET /inventario/lotes (?producto=<id>)
func (h *LotHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.LotRequest{}, domain.FieldErrors{})
}

// Create POST /inventario/lotes
func (h *LotHandler) Create(c *fiber.Ctx) error {
	errs := domain.FieldErrors{}
	in := lotForm(c, errs)
	if errs.Empty() {
		out, err := h.uc.Create(c.UserContext(), in)
		if err == nil {
			h.pages.flash(c, "Lote "+out.Code+" creado.")
			return c.Redirect("/inventario/lotes")
		}
		fe, ok := asFieldErrors(err)
		if !ok {
			return h.pages.fail(c, err)
		}
		errs.Merge(fe)
	}
	c.Status(fiber.StatusBadRequest)
	return h.renderList(c, in, errs)
}

func (h *LotHandler) renderEdit(c *fiber.Ctx, id string, form dto.LotRequest, errs domain.FieldErrors) error {
	products, err := h.products.ListAll(c.UserContext(), "")
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "lots/edit", fiber.Map{
		"Title":    "Editar lote",
		"ID":       id,
		"Form":     form,
		"Products": products,
		"Errors":   errs,
	})
}

// EditPage GET /inventario/lotes/:id/editar
func (h *LotHandler) EditPage(c *fiber.Ctx) error {
	l, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if l == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	form := dto.LotRequest{Code: l.Code, ProductID: l.ProductID, ExpiryDate: l.ExpiryDate, Available: l.Available}
	return h.renderEdit(c, l.ID, form, domain.FieldErrors{})
}

// Update POST /inventario/lotes/:id/editar
func (h *LotHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	errs := domain.FieldErrors{}
	in := lotForm(c, errs)
	if errs.Empty() {
		_, err := h.uc.Update(c.UserContext(), id, in)
		if err == nil {
			h.pages.flash(c, "Lote actualizado.")
			return c.Redirect("/inventario/lotes")
		}
		fe, ok := asFieldErrors(err)
		if !ok {
			return h.pages.fail(c, err)
		}
		errs.Merge(fe)
	}
	c.Status(fiber.StatusBadRequest)
	return h.renderEdit(c, id, in, errs)
}

// Delete POST /inventario/lotes/:id/eliminar
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Lote eliminado.")
	return c.Redirect("/inventario/lotes")
}
