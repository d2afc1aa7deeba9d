package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// DocumentGenerator genera los PDF de comprobantes y reposición.
type DocumentGenerator interface {
	GenerateMovementPDF(ctx context.Context, m *entity.Movement) ([]byte, error)
	GenerateReplenishmentPDF(ctx context.Context, items []dto.ReplenishmentSuggestionDTO, at time.Time) ([]byte, error)
}

// InventoryHandler páginas del libro de movimientos y endpoints AJAX del formulario.
type InventoryHandler struct {
	register      *inventory.RegisterMovementUseCase
	movements     *inventory.MovementUseCase
	replenishment *inventory.ReplenishmentUseCase
	products      *usecase.ProductUseCase
	suppliers     *usecase.SupplierUseCase
	warehouses    *usecase.WarehouseUseCase
	lots          *usecase.LotUseCase
	docs          DocumentGenerator
	pages         *Pages
}

// InventoryDeps dependencias del handler de inventario.
type InventoryDeps struct {
	Register      *inventory.RegisterMovementUseCase
	Movements     *inventory.MovementUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Products      *usecase.ProductUseCase
	Suppliers     *usecase.SupplierUseCase
	Warehouses    *usecase.WarehouseUseCase
	Lots          *usecase.LotUseCase
	Docs          DocumentGenerator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(d InventoryDeps, pages *Pages) *InventoryHandler {
	return &InventoryHandler{
		register:      d.Register,
		movements:     d.Movements,
		replenishment: d.Replenishment,
		products:      d.Products,
		suppliers:     d.Suppliers,
		warehouses:    d.Warehouses,
		lots:          d.Lots,
		docs:          d.Docs,
		pages:         pages,
	}
}

func movementQuery(c *fiber.Ctx) inventory.MovementQuery {
	return inventory.MovementQuery{
		Type:        c.Query("tipo"),
		ProductName: c.Query("producto"),
		Warehouse:   c.Query("bodega"),
		PageRequest: pageFromQuery(c),
	}
}

// ListMovements GET /inventario/movimientos: filtros tipo, producto y bodega (?export=xlsx).
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	q := movementQuery(c)
	if wantsExport(c) {
		tbl, err := h.movements.ExportTable(c.UserContext(), q)
		if err != nil {
			return h.pages.fail(c, err)
		}
		return h.pages.sendTable(c, tbl, "movimientos")
	}
	list, err := h.movements.List(c.UserContext(), q)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "movements/list", fiber.Map{
		"Title":     "Movimientos de inventario",
		"Movements": list.Items,
		"Page":      list.Page,
		"PageSizes": dto.PageSizes,
		"Types":     entity.MovementTypes,
		"Query":     filterQuery(c, "tipo", "producto", "bodega", "pp"),
		"Type":      q.Type,
		"Product":   q.ProductName,
		"Warehouse": q.Warehouse,
	})
}

// movementForm valores del formulario tal como se enviaron, para volver a mostrarlos.
type movementForm struct {
	Type          string
	Direction     string
	ProductID     string
	SupplierID    string
	OriginID      string
	DestinationID string
	Quantity      string
	LotID         string
	Serial        string
	ExpiryDate    string
	Note          string
	DocumentRef   string
}

func readMovementForm(c *fiber.Ctx) movementForm {
	return movementForm{
		Type:          formString(c, "tipo"),
		Direction:     formString(c, "ajuste_signo"),
		ProductID:     formString(c, "producto"),
		SupplierID:    formString(c, "proveedor"),
		OriginID:      formString(c, "bodega_origen"),
		DestinationID: formString(c, "bodega_destino"),
		Quantity:      formString(c, "cantidad"),
		LotID:         formString(c, "lote"),
		Serial:        formString(c, "serie"),
		ExpiryDate:    formString(c, "fecha_vencimiento"),
		Note:          formString(c, "observacion"),
		DocumentRef:   formString(c, "documento_referencia"),
	}
}

func (h *InventoryHandler) renderMovementForm(c *fiber.Ctx, form movementForm, errs domain.FieldErrors) error {
	ctx := c.UserContext()
	products, err := h.products.ListAll(ctx, "")
	if err != nil {
		return h.pages.fail(c, err)
	}
	suppliers, err := h.suppliers.ListAll(ctx, "", entity.SupplierActive)
	if err != nil {
		return h.pages.fail(c, err)
	}
	warehouses, err := h.warehouses.List(ctx)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "movements/form", fiber.Map{
		"Title":      "Registrar movimiento",
		"Types":      entity.MovementTypes,
		"Products":   products,
		"Suppliers":  suppliers,
		"Warehouses": warehouses,
		"Form":       form,
		"Errors":     errs,
	})
}

// NewMovementPage GET /inventario/movimientos/nuevo
func (h *InventoryHandler) NewMovementPage(c *fiber.Ctx) error {
	return h.renderMovementForm(c, movementForm{Type: entity.MovementIngreso}, domain.FieldErrors{})
}

// CreateMovement POST /inventario/movimientos/nuevo
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	form := readMovementForm(c)
	errs := domain.FieldErrors{}
	in := inventory.MovementInputDTO{
		Type:                   form.Type,
		AdjustmentDirection:    form.Direction,
		ProductID:              form.ProductID,
		SupplierID:             form.SupplierID,
		OriginWarehouseID:      form.OriginID,
		DestinationWarehouseID: form.DestinationID,
		Quantity:               formOptDecimal(c, "cantidad", errs),
		LotID:                  form.LotID,
		Serial:                 form.Serial,
		ExpiryDate:             formDate(c, "fecha_vencimiento", errs),
		UserID:                 GetUserID(c),
		Note:                   form.Note,
		DocumentRef:            form.DocumentRef,
	}
	if errs.Empty() {
		m, err := h.register.RecordMovement(c.UserContext(), in)
		if err == nil {
			h.pages.flash(c, "Movimiento registrado.")
			return c.Redirect("/inventario/movimientos/" + m.ID)
		}
		fe, ok := asFieldErrors(err)
		if !ok {
			return h.pages.fail(c, err)
		}
		errs.Merge(fe)
	} else {
		// Un campo que no se pudo interpretar no oculta los demás errores de negocio.
		more, err := h.register.Validate(c.UserContext(), in)
		if err != nil {
			return h.pages.fail(c, err)
		}
		errs.MergeMissing(more)
	}
	c.Status(fiber.StatusBadRequest)
	return h.renderMovementForm(c, form, errs)
}

func (h *InventoryHandler) movement(c *fiber.Ctx) (*entity.Movement, error) {
	return h.movements.GetByID(c.UserContext(), c.Params("id"))
}

// MovementDetail GET /inventario/movimientos/:id
func (h *InventoryHandler) MovementDetail(c *fiber.Ctx) error {
	m, err := h.movement(c)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "movements/detail", fiber.Map{
		"Title":    "Movimiento " + m.Type,
		"Movement": inventory.ToMovementResponse(m),
	})
}

// EditMovementPage GET /inventario/movimientos/:id/editar: solo campos descriptivos.
func (h *InventoryHandler) EditMovementPage(c *fiber.Ctx) error {
	m, err := h.movement(c)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "movements/edit", fiber.Map{
		"Title":    "Editar movimiento",
		"Movement": inventory.ToMovementResponse(m),
		"Form":     dto.MovementDescriptiveRequest{Note: m.Note, DocumentRef: m.DocumentRef, Serial: m.Serial},
	})
}

// UpdateMovement POST /inventario/movimientos/:id/editar
func (h *InventoryHandler) UpdateMovement(c *fiber.Ctx) error {
	req := dto.MovementDescriptiveRequest{
		Note:        formString(c, "observacion"),
		DocumentRef: formString(c, "documento_referencia"),
		Serial:      formString(c, "serie"),
	}
	m, err := h.movements.UpdateDescriptive(c.UserContext(), c.Params("id"), req)
	if fe, ok := asFieldErrors(err); ok {
		cur, gerr := h.movement(c)
		if gerr != nil {
			return h.pages.fail(c, gerr)
		}
		c.Status(fiber.StatusBadRequest)
		return h.pages.render(c, "movements/edit", fiber.Map{
			"Title":    "Editar movimiento",
			"Movement": inventory.ToMovementResponse(cur),
			"Form":     req,
			"Errors":   fe,
		})
	}
	if err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Movimiento actualizado.")
	return c.Redirect("/inventario/movimientos/" + m.ID)
}

// MovementPDF GET /inventario/movimientos/:id/comprobante
func (h *InventoryHandler) MovementPDF(c *fiber.Ctx) error {
	m, err := h.movement(c)
	if err != nil {
		return h.pages.fail(c, err)
	}
	pdf, err := h.docs.GenerateMovementPDF(c.UserContext(), m)
	if err != nil {
		return h.pages.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante_`+m.ID+`.pdf"`)
	return c.Send(pdf)
}

// SupplierProducts GET /inventario/ajax/proveedores/:id/productos
func (h *InventoryHandler) SupplierProducts(c *fiber.Ctx) error {
	items, err := h.products.OptionsBySupplier(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"productos": items})
}

// ProductLots GET /inventario/ajax/productos/:id/lotes: lotes con saldo, por código.
func (h *InventoryHandler) ProductLots(c *fiber.Ctx) error {
	items, err := h.lots.AvailableByProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"lotes": items})
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en o bajo su umbral de alerta con la cantidad sugerida de pedido
//
//	y el proveedor preferente, ordenados por déficit.
//
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.ReplenishmentSuggestionDTO}
// @Failure      401  {object}  dto.APIError
// @Failure      500  {object}  dto.APIError
// @Router       /api/inventario/reposicion [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	items, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusOK, "", items)
}
