package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
)

// WarehouseHandler páginas HTML de bodegas.
type WarehouseHandler struct {
	uc    *usecase.WarehouseUseCase
	pages *Pages
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, pages *Pages) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, pages: pages}
}

func warehouseForm(c *fiber.Ctx) dto.WarehouseRequest {
	return dto.WarehouseRequest{
		Code:        formString(c, "codigo"),
		Name:        formString(c, "nombre"),
		Location:    formString(c, "ubicacion"),
		Description: formString(c, "descripcion"),
	}
}

func (h *WarehouseHandler) renderList(c *fiber.Ctx, form dto.WarehouseRequest, errs domain.FieldErrors) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "warehouses/list", fiber.Map{
		"Title":      "Bodegas",
		"Warehouses": list,
		"Form":       form,
		"Errors":     errs,
	})
}

// List GET /inventario/bodegas
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.WarehouseRequest{}, domain.FieldErrors{})
}

// Create POST /inventario/bodegas
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	in := warehouseForm(c)
	out, err := h.uc.Create(c.UserContext(), in)
	if err == nil {
		h.pages.flash(c, "Bodega "+out.Code+" creada.")
		return c.Redirect("/inventario/bodegas")
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	c.Status(fiber.StatusBadRequest)
	return h.renderList(c, in, fe)
}

// EditPage GET /inventario/bodegas/:id/editar
func (h *WarehouseHandler) EditPage(c *fiber.Ctx) error {
	w, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if w == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	return h.pages.render(c, "warehouses/edit", fiber.Map{
		"Title": "Editar bodega",
		"ID":    w.ID,
		"Form":  dto.WarehouseRequest{Code: w.Code, Name: w.Name, Location: w.Location, Description: w.Description},
	})
}

// Update POST /inventario/bodegas/:id/editar
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in := warehouseForm(c)
	_, err := h.uc.Update(c.UserContext(), id, in)
	if err == nil {
		h.pages.flash(c, "Bodega actualizada.")
		return c.Redirect("/inventario/bodegas")
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "warehouses/edit", fiber.Map{"Title": "Editar bodega", "ID": id, "Form": in, "Errors": fe})
}

// Delete POST /inventario/bodegas/:id/eliminar
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Bodega eliminada.")
	return c.Redirect("/inventario/bodegas")
}
