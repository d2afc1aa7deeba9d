//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/postgres"
	"github.com/jhoicas/dulceria-lilis/pkg/config"
)

// startPostgres levanta un contenedor postgres:15-alpine, aplica migraciones y devuelve el pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("lilis_test"),
		tcPostgres.WithUsername("lilis"),
		tcPostgres.WithPassword("lilis"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	// Idempotente.
	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

func TestIntegration_RecordMovementProyectaStock(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	now := time.Now()

	products := postgres.NewProductRepository(pool)
	warehouses := postgres.NewWarehouseRepository(pool)
	suppliers := postgres.NewSupplierRepository(pool)
	sourcing := postgres.NewProductSupplierRepository(pool)
	movements := postgres.NewMovementRepository(pool)
	stock := postgres.NewStockRepository(pool)

	p := &entity.Product{
		ID: uuid.New().String(), SKU: "SKU100", Name: "Chocolate", Category: "Dulces",
		UOMPurchase: entity.UOMCaja, UOMSale: entity.UOMUnidad, ConversionFactor: decimal.NewFromInt(12),
		TaxRate: decimal.NewFromInt(19), MinStock: decimal.NewFromInt(10), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, products.Create(ctx, p))

	w1 := &entity.Warehouse{ID: uuid.New().String(), Code: "B01", Name: "Central", CreatedAt: now, UpdatedAt: now}
	w2 := &entity.Warehouse{ID: uuid.New().String(), Code: "B02", Name: "Sala", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, warehouses.Create(ctx, w1))
	require.NoError(t, warehouses.Create(ctx, w2))

	s := &entity.Supplier{
		ID: uuid.New().String(), RUT: "76086428-5", LegalName: "Dulces SpA", Email: "ventas@dulces.cl",
		Country: "Chile", PaymentTerms: entity.PaymentTransfer, Currency: entity.CurrencyCLP,
		Status: entity.SupplierActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, suppliers.Create(ctx, s))
	require.NoError(t, sourcing.Create(ctx, &entity.ProductSupplier{
		ID: uuid.New().String(), ProductID: p.ID, SupplierID: s.ID, Cost: decimal.NewFromInt(500),
		LeadTimeDays: 7, MinLot: decimal.NewFromInt(1), Preferred: true, CreatedAt: now, UpdatedAt: now,
	}))

	uc := inventory.NewRegisterMovementUseCase(
		postgres.NewTxRunner(pool), postgres.NewLotRepository(pool), suppliers, warehouses, sourcing,
		inventory.Policy{AllowNegativeStock: true}, nil,
	)
	expiry := now.AddDate(1, 0, 0)
	qty := func(n int64) *decimal.Decimal {
		d := decimal.NewFromInt(n)
		return &d
	}

	_, err := uc.RecordMovement(ctx, inventory.MovementInputDTO{
		Type: entity.MovementIngreso, ProductID: p.ID, SupplierID: s.ID, DestinationWarehouseID: w1.ID,
		Quantity: qty(100), ExpiryDate: &expiry,
	})
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, inventory.MovementInputDTO{
		Type: entity.MovementTransferencia, ProductID: p.ID, OriginWarehouseID: w1.ID, DestinationWarehouseID: w2.ID,
		Quantity: qty(30), ExpiryDate: &expiry,
	})
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, inventory.MovementInputDTO{
		Type: entity.MovementSalida, ProductID: p.ID, OriginWarehouseID: w2.ID, Quantity: qty(120), ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "-20", got.CurrentStock.String())
	assert.Equal(t, "500", got.AverageCost.String())

	sum, err := movements.SumByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(got.CurrentStock))

	perWarehouse, err := stock.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, perWarehouse, 2)
	assert.Equal(t, "70", perWarehouse[0].Quantity.String())
	assert.Equal(t, "-90", perWarehouse[1].Quantity.String())

	list, total, err := movements.List(ctx, repository.MovementFilter{WarehouseTokens: []string{"sala"}, Page: repository.Page{Limit: 5}})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, entity.MovementSalida, list[0].Type)
	assert.Equal(t, "B02 - Sala", list[0].OriginLabel())

	low, err := products.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, p.ID, low[0].ID)
}

func TestIntegration_UnicidadProducto(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	now := time.Now()
	products := postgres.NewProductRepository(pool)

	base := entity.Product{
		SKU: "SKU200", Name: "Gomitas", Category: "Dulces", UOMPurchase: entity.UOMUnidad, UOMSale: entity.UOMUnidad,
		ConversionFactor: decimal.NewFromInt(1), CreatedAt: now, UpdatedAt: now,
	}
	a, b := base, base
	a.ID, b.ID = uuid.New().String(), uuid.New().String()
	require.NoError(t, products.Create(ctx, &a))
	assert.Error(t, products.Create(ctx, &b))

	// Dos productos sin EAN no chocan.
	b.SKU = "SKU201"
	require.NoError(t, products.Create(ctx, &b))

	list, total, err := products.List(ctx, repository.ProductFilter{Search: "sku2"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)
}

func TestIntegration_MovimientosConcurrentesMismoProducto(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	now := time.Now()

	products := postgres.NewProductRepository(pool)
	warehouses := postgres.NewWarehouseRepository(pool)
	movements := postgres.NewMovementRepository(pool)

	p := &entity.Product{
		ID: uuid.New().String(), SKU: "SKU200", Name: "Calugas", Category: "Dulces",
		UOMPurchase: entity.UOMUnidad, UOMSale: entity.UOMUnidad, ConversionFactor: decimal.NewFromInt(1),
		TaxRate: decimal.NewFromInt(19), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, products.Create(ctx, p))
	w := &entity.Warehouse{ID: uuid.New().String(), Code: "B01", Name: "Central", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, warehouses.Create(ctx, w))

	uc := inventory.NewRegisterMovementUseCase(
		postgres.NewTxRunner(pool), postgres.NewLotRepository(pool),
		postgres.NewSupplierRepository(pool), warehouses, postgres.NewProductSupplierRepository(pool),
		inventory.Policy{AllowNegativeStock: false}, nil,
	)
	expiry := now.AddDate(1, 0, 0)
	qty := func(n int64) *decimal.Decimal {
		d := decimal.NewFromInt(n)
		return &d
	}
	_, err := uc.RecordMovement(ctx, inventory.MovementInputDTO{
		Type: entity.MovementAjuste, AdjustmentDirection: entity.AdjustmentIncrease, ProductID: p.ID,
		DestinationWarehouseID: w.ID, Quantity: qty(100), ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	// 10 salidas de 30 sobre 100 disponibles: solo 3 caben sin dejar stock negativo.
	const n = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordMovement(ctx, inventory.MovementInputDTO{
				Type: entity.MovementSalida, ProductID: p.ID, OriginWarehouseID: w.ID, Quantity: qty(30),
				ExpiryDate: &expiry,
			})
			mu.Lock()
			defer mu.Unlock()
			var fe domain.FieldErrors
			switch {
			case err == nil:
				ok++
			case errors.As(err, &fe):
				rejected++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, n-3, rejected)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", got.CurrentStock.String())

	sum, err := movements.SumByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(got.CurrentStock), "current_stock=%s suma=%s", got.CurrentStock, sum)
}
