package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/internal/application/analytics"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
	apphttp "github.com/jhoicas/dulceria-lilis/internal/interfaces/http"
)

type stubAnalytics struct {
	valErr error
}

func (s stubAnalytics) GetMovementTotals(context.Context, time.Time, time.Time) ([]repository.MovementTypeTotal, error) {
	return []repository.MovementTypeTotal{{Type: entity.MovementIngreso, Count: 1, Quantity: decimal.NewFromInt(24)}}, nil
}

func (s stubAnalytics) GetTopProducts(context.Context, time.Time, time.Time, int) ([]repository.ProductActivity, error) {
	return nil, nil
}

func (s stubAnalytics) GetStockValuation(context.Context) (repository.StockValuation, error) {
	return repository.StockValuation{Products: 1, Units: decimal.NewFromInt(24), TotalValue: decimal.NewFromInt(12000)}, s.valErr
}

func buildAnalyticsAPI(repo repository.AnalyticsRepository) *fiber.App {
	app := fiber.New()
	h := apphttp.NewAnalyticsHandler(analytics.NewDashboardUseCase(repo))
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Get("/inventario/resumen", apphttp.RequirePermission(entity.PermViewMovements), h.GetSummary)
	return app
}

func TestAnalyticsAPI_Resumen(t *testing.T) {
	app := buildAnalyticsAPI(stubAnalytics{})

	status, body := apiCall(t, app, http.MethodGet, "/api/inventario/resumen", entity.RoleOperador, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(status), body["status"])
	assert.NotNil(t, body["data"])
}

func TestAnalyticsAPI_RolDesconocido_Retorna403(t *testing.T) {
	app := buildAnalyticsAPI(stubAnalytics{})

	status, _ := apiCall(t, app, http.MethodGet, "/api/inventario/resumen", "VENDEDOR", "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAnalyticsAPI_ErrorRepositorio_Retorna500(t *testing.T) {
	app := buildAnalyticsAPI(stubAnalytics{valErr: errors.New("conexión perdida")})

	status, body := apiCall(t, app, http.MethodGet, "/api/inventario/resumen", entity.RoleAdmin, "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, float64(status), body["status"])
}
