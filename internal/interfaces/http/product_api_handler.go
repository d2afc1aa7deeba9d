package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
)

func apiFail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.APIError{Status: status, Error: msg})
}

// apiOK responde el sobre de éxito con el mismo código en status.
func apiOK(c *fiber.Ctx, status int, msg string, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{Status: status, Mensaje: msg, Data: data})
}

// apiError traduce errores de casos de uso al sobre {status, error}.
func apiError(c *fiber.Ctx, err error) error {
	if fe, ok := asFieldErrors(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIError{Status: fiber.StatusBadRequest, Error: fe})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apiFail(c, fiber.StatusNotFound, "recurso no encontrado")
	case errors.Is(err, domain.ErrDuplicate):
		return apiFail(c, fiber.StatusBadRequest, "ya existe un registro con esos datos")
	case errors.Is(err, domain.ErrConflict):
		return apiFail(c, fiber.StatusBadRequest, "el producto tiene movimientos registrados y no puede eliminarse")
	}
	return apiFail(c, fiber.StatusInternalServerError, err.Error())
}

// ProductAPIHandler API JSON de productos (Bearer JWT).
type ProductAPIHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductAPIHandler construye el handler.
func NewProductAPIHandler(uc *usecase.ProductUseCase) *ProductAPIHandler {
	return &ProductAPIHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        buscar  query  string  false  "SKU o nombre"
// @Param        page    query  int     false  "Página"            default(1)
// @Param        pp      query  int     false  "Tamaño (5/10/20)"  default(5)
// @Success      200     {object}  dto.APIResponse{data=dto.ProductListResponse}
// @Failure      401     {object}  dto.APIError
// @Failure      403     {object}  dto.APIError
// @Router       /api/productos [get]
func (h *ProductAPIHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("buscar"), pageFromQuery(c))
	if err != nil {
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusOK, "", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse{data=dto.ProductResponse}
// @Failure      404  {object}  dto.APIError
// @Router       /api/productos/{id} [get]
func (h *ProductAPIHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return apiError(c, err)
	}
	if out == nil {
		return apiFail(c, fiber.StatusNotFound, "producto no encontrado")
	}
	return apiOK(c, fiber.StatusOK, "", out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.APIResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.APIError
// @Router       /api/productos [post]
func (h *ProductAPIHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return apiFail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusCreated, "Producto creado", out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.APIResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.APIError
// @Failure      404   {object}  dto.APIError
// @Router       /api/productos/{id} [put]
func (h *ProductAPIHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return apiFail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusOK, "Producto actualizado", out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Failure      404  {object}  dto.APIError
// @Router       /api/productos/{id} [delete]
func (h *ProductAPIHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusOK, "Producto eliminado", nil)
}
