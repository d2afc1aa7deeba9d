package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
	apphttp "github.com/jhoicas/dulceria-lilis/internal/interfaces/http"
)

// memProducts implementación en memoria de repository.ProductRepository.
type memProducts struct {
	mu       sync.Mutex
	items    map[string]*entity.Product
	withMovs map[string]bool
}

func newMemProducts() *memProducts {
	return &memProducts{items: map[string]*entity.Product{}, withMovs: map[string]bool{}}
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProducts) find(match func(*entity.Product) bool) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if match(p) {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (r *memProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.find(func(p *entity.Product) bool { return p.SKU == sku }), nil
}

func (r *memProducts) GetByEAN(_ context.Context, ean string) (*entity.Product, error) {
	return r.find(func(p *entity.Product) bool { return p.EAN == ean }), nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.items[p.ID]
	cp := *p
	cp.CurrentStock = cur.CurrentStock
	cp.AverageCost = cur.AverageCost
	r.items[p.ID] = &cp
	return nil
}

func (r *memProducts) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.withMovs[id] {
		return domain.ErrConflict
	}
	delete(r.items, id)
	return nil
}

func (r *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.items {
		if f.Search == "" || strings.Contains(strings.ToLower(p.SKU+" "+p.Name), strings.ToLower(f.Search)) {
			out = append(out, p)
		}
	}
	total := len(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r *memProducts) ListBySupplier(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProducts) ListLowStock(context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProducts) AddStock(_ context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.items[id]
	p.CurrentStock = p.CurrentStock.Add(delta)
	return p.CurrentStock, nil
}

func (r *memProducts) UpdateAverageCost(_ context.Context, id string, cost decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].AverageCost = cost
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildProductAPI(repo *memProducts) *fiber.App {
	app := fiber.New()
	h := apphttp.NewProductAPIHandler(usecase.NewProductUseCase(repo, nil))
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Get("/productos", apphttp.RequirePermission(entity.PermViewProducts), h.List)
	api.Post("/productos", apphttp.RequirePermission(entity.PermAddProducts), h.Create)
	api.Get("/productos/:id", apphttp.RequirePermission(entity.PermViewProducts), h.GetByID)
	api.Put("/productos/:id", apphttp.RequirePermission(entity.PermChangeProducts), h.Update)
	api.Delete("/productos/:id", apphttp.RequirePermission(entity.PermDeleteProducts), h.Delete)
	return app
}

func apiCall(t *testing.T, app *fiber.App, method, path, role, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

const validProduct = `{"sku":"sku100","nombre":"Chocolate amargo","categoria":"Chocolates",
	"uom_compra":"CJ","uom_venta":"UN","factor_conversion":12,"costo_estandar":"850",
	"precio_venta":"1290","impuesto_iva":19,"stock_minimo":10,"stock_maximo":100}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests API de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductAPI_CrearYObtener(t *testing.T) {
	repo := newMemProducts()
	app := buildProductAPI(repo)

	status, body := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleOperador, validProduct)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(http.StatusCreated), body["status"])
	assert.Equal(t, "Producto creado", body["mensaje"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "SKU100", data["sku"], "el SKU se guarda en mayúsculas")
	assert.Equal(t, "0", data["stock_actual"], "el stock inicial es 0")
	assert.Equal(t, true, data["alerta_stock_bajo"], "stock 0 <= mínimo 10")

	id := data["id"].(string)
	status, body = apiCall(t, app, http.MethodGet, "/api/productos/"+id, entity.RoleProveedor, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Chocolate amargo", body["data"].(map[string]interface{})["nombre"])
}

func TestProductAPI_ErroresPorCampo_Retorna400(t *testing.T) {
	app := buildProductAPI(newMemProducts())

	status, body := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleAdmin,
		`{"sku":"ABC","nombre":"Gomitas 2","categoria":"","uom_compra":"UN","uom_venta":"UN","factor_conversion":1}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, float64(status), body["status"])

	fields := body["error"].(map[string]interface{})
	assert.Contains(t, fields, "sku")
	assert.Contains(t, fields, "nombre")
	assert.Contains(t, fields, "categoria")
}

func TestProductAPI_SKUDuplicado_Retorna400(t *testing.T) {
	app := buildProductAPI(newMemProducts())

	status, _ := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleAdmin, validProduct)
	require.Equal(t, http.StatusCreated, status)

	status, body := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleAdmin, validProduct)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"].(map[string]interface{}), "sku")
}

func TestProductAPI_NoExiste_Retorna404(t *testing.T) {
	app := buildProductAPI(newMemProducts())

	status, body := apiCall(t, app, http.MethodGet, "/api/productos/no-existe", entity.RoleAdmin, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, float64(status), body["status"])

	status, _ = apiCall(t, app, http.MethodPut, "/api/productos/no-existe", entity.RoleAdmin, validProduct)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProductAPI_ProveedorNoCrea_Retorna403(t *testing.T) {
	app := buildProductAPI(newMemProducts())

	status, body := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleProveedor, validProduct)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, float64(status), body["status"])
}

func TestProductAPI_ActualizarNoTocaStock(t *testing.T) {
	repo := newMemProducts()
	app := buildProductAPI(repo)

	_, body := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleAdmin, validProduct)
	id := body["data"].(map[string]interface{})["id"].(string)
	_, err := repo.AddStock(context.Background(), id, decimal.NewFromInt(40))
	require.NoError(t, err)

	update := strings.Replace(validProduct, "Chocolate amargo", "Chocolate blanco", 1)
	status, body := apiCall(t, app, http.MethodPut, "/api/productos/"+id, entity.RoleOperador, update)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Chocolate blanco", data["nombre"])
	assert.Equal(t, "40", data["stock_actual"])
}

func TestProductAPI_EliminarConMovimientos_Retorna400(t *testing.T) {
	repo := newMemProducts()
	app := buildProductAPI(repo)

	_, body := apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleAdmin, validProduct)
	id := body["data"].(map[string]interface{})["id"].(string)
	repo.withMovs[id] = true

	status, _ := apiCall(t, app, http.MethodDelete, "/api/productos/"+id, entity.RoleOperador, "")
	assert.Equal(t, http.StatusForbidden, status, "operador no tiene productos.eliminar")

	status, body = apiCall(t, app, http.MethodDelete, "/api/productos/"+id, entity.RoleAdmin, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, float64(status), body["status"])
}

func TestProductAPI_ListarPaginado(t *testing.T) {
	repo := newMemProducts()
	app := buildProductAPI(repo)
	_, _ = apiCall(t, app, http.MethodPost, "/api/productos", entity.RoleAdmin, validProduct)

	status, body := apiCall(t, app, http.MethodGet, "/api/productos?buscar=choco&pp=7", entity.RoleProveedor, "")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	page := data["page"].(map[string]interface{})
	assert.Equal(t, float64(5), page["per_page"], "pp fuera de 5/10/20 vuelve a 5")
	assert.Equal(t, float64(1), page["total"])
	assert.Len(t, data["items"], 1)
}
