package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/analytics"
	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// DashboardHandler página de inicio: alertas de stock bajo y resumen de actividad.
type DashboardHandler struct {
	summary       *analytics.DashboardUseCase
	replenishment *inventory.ReplenishmentUseCase
	docs          DocumentGenerator
	pages         *Pages
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(summary *analytics.DashboardUseCase, replenishment *inventory.ReplenishmentUseCase, docs DocumentGenerator, pages *Pages) *DashboardHandler {
	return &DashboardHandler{summary: summary, replenishment: replenishment, docs: docs, pages: pages}
}

// Home GET /
//
// Solo los roles con acceso a productos ven la lista de reposición,
// y solo quienes ven movimientos ven el resumen de actividad.
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	data := fiber.Map{"Title": "Inicio"}
	role := GetRole(c)
	if entity.HasPermission(role, entity.PermViewMovements) {
		summary, err := h.summary.GetSummary(c.UserContext())
		if err != nil {
			return h.pages.fail(c, err)
		}
		data["Summary"] = summary
	}
	if entity.HasPermission(role, entity.PermViewProducts) {
		items, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
		if err != nil {
			return h.pages.fail(c, err)
		}
		data["LowStock"] = items
	}
	return h.pages.render(c, "dashboard", data)
}

// ReplenishmentPDF GET /reposicion.pdf
func (h *DashboardHandler) ReplenishmentPDF(c *fiber.Ctx) error {
	items, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return h.pages.fail(c, err)
	}
	now := time.Now()
	pdf, err := h.docs.GenerateReplenishmentPDF(c.UserContext(), items, now)
	if err != nil {
		return h.pages.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment("reposicion_" + now.Format("20060102_1504") + ".pdf")
	return c.Send(pdf)
}
