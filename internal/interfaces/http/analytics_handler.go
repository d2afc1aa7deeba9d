package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/analytics"
)

// AnalyticsHandler resumen de actividad de inventario para la API JSON.
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de actividad de inventario
// @Description  Movimientos por tipo del día y del mes, productos con más movimiento
//               y valorización del stock a costo promedio.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.DashboardSummaryDTO}
// @Failure      401  {object}  dto.APIError
// @Failure      403  {object}  dto.APIError
// @Failure      500  {object}  dto.APIError
// @Router       /api/inventario/resumen [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusOK, "", summary)
}
