package inventory_test

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	domaininv "github.com/jhoicas/dulceria-lilis/internal/domain/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// memStore guarda el estado de los fakes; Run restaura la copia previa si fn falla.
type memStore struct {
	mu         sync.Mutex
	products   map[string]entity.Product
	lots       map[string]entity.Lot
	suppliers  map[string]entity.Supplier
	warehouses map[string]entity.Warehouse
	links      []entity.ProductSupplier
	stock      map[string]decimal.Decimal // productID|warehouseID
	movements  []entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[string]entity.Product{},
		lots:       map[string]entity.Lot{},
		suppliers:  map[string]entity.Supplier{},
		warehouses: map[string]entity.Warehouse{},
		stock:      map[string]decimal.Decimal{},
	}
}

func (s *memStore) Run(_ context.Context, fn func(inventory.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := cloneMap(s.products)
	lots := cloneMap(s.lots)
	stock := cloneMap(s.stock)
	movements := append([]entity.Movement(nil), s.movements...)

	err := fn(inventory.TxRepos{
		Movements: movementRepo{s},
		Products:  productRepo{s},
		Stock:     stockRepo{s},
		Lots:      lotRepo{s},
	})
	if err != nil {
		s.products, s.lots, s.stock, s.movements = products, lots, stock, movements
	}
	return err
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ─── productos ────────────────────────────────────────────────────────────────

type productRepo struct{ s *memStore }

var _ repository.ProductRepository = productRepo{}

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r productRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (r productRepo) GetByEAN(_ context.Context, ean string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.EAN == ean {
			return &p, nil
		}
	}
	return nil, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r productRepo) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

func (r productRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, int, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		out = append(out, &p)
	}
	return out, len(out), nil
}

func (r productRepo) ListBySupplier(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

func (r productRepo) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		p := p
		if p.IsLowStock() {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) AddStock(_ context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	p := r.s.products[id]
	p.CurrentStock = p.CurrentStock.Add(delta)
	r.s.products[id] = p
	return p.CurrentStock, nil
}

func (r productRepo) UpdateAverageCost(_ context.Context, id string, cost decimal.Decimal) error {
	p := r.s.products[id]
	p.AverageCost = cost
	r.s.products[id] = p
	return nil
}

// ─── movimientos ──────────────────────────────────────────────────────────────

type movementRepo struct{ s *memStore }

var _ repository.MovementRepository = movementRepo{}

func (r movementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r movementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

func (r movementRepo) UpdateDescriptive(_ context.Context, id, note, documentRef, serial string) error {
	for i := range r.s.movements {
		if r.s.movements[i].ID == id {
			r.s.movements[i].Note = note
			r.s.movements[i].DocumentRef = documentRef
			r.s.movements[i].Serial = serial
		}
	}
	return nil
}

func (r movementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	var out []*entity.Movement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.ProductName != "" && !strings.Contains(strings.ToLower(m.ProductName), strings.ToLower(f.ProductName)) {
			continue
		}
		out = append(out, &m)
	}
	total := len(out)
	if f.Limit > 0 {
		end := f.Offset + f.Limit
		if end > total {
			end = total
		}
		if f.Offset > total {
			f.Offset = total
		}
		out = out[f.Offset:end]
	}
	return out, total, nil
}

func (r movementRepo) SumByProduct(_ context.Context, productID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			sum = sum.Add(domaininv.StockDelta(m.Type, m.AdjustmentDirection, m.Quantity))
		}
	}
	return sum, nil
}

// ─── stock por bodega y lotes ─────────────────────────────────────────────────

type stockRepo struct{ s *memStore }

var _ repository.StockRepository = stockRepo{}

func (r stockRepo) Add(_ context.Context, productID, warehouseID string, delta decimal.Decimal) (decimal.Decimal, error) {
	k := productID + "|" + warehouseID
	r.s.stock[k] = r.s.stock[k].Add(delta)
	return r.s.stock[k], nil
}

func (r stockRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for k, q := range r.s.stock {
		parts := strings.SplitN(k, "|", 2)
		if parts[0] == productID {
			out = append(out, &entity.Stock{ProductID: parts[0], WarehouseID: parts[1], Quantity: q})
		}
	}
	return out, nil
}

type lotRepo struct{ s *memStore }

var _ repository.LotRepository = lotRepo{}

func (r lotRepo) Create(_ context.Context, l *entity.Lot) error {
	r.s.lots[l.ID] = *l
	return nil
}

func (r lotRepo) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r lotRepo) GetForUpdate(ctx context.Context, id string) (*entity.Lot, error) {
	return r.GetByID(ctx, id)
}

func (r lotRepo) Update(_ context.Context, l *entity.Lot) error {
	r.s.lots[l.ID] = *l
	return nil
}

func (r lotRepo) Delete(_ context.Context, id string) error {
	delete(r.s.lots, id)
	return nil
}

func (r lotRepo) ListByProduct(context.Context, string, bool) ([]*entity.Lot, error) { return nil, nil }
func (r lotRepo) List(context.Context) ([]*entity.Lot, error)                       { return nil, nil }

func (r lotRepo) AddQuantity(_ context.Context, id string, delta decimal.Decimal) error {
	l := r.s.lots[id]
	l.Available = l.Available.Add(delta)
	r.s.lots[id] = l
	return nil
}

// ─── proveedores y bodegas ────────────────────────────────────────────────────

type supplierRepo struct{ s *memStore }

var _ repository.SupplierRepository = supplierRepo{}

func (r supplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.suppliers[sp.ID] = *sp
	return nil
}

func (r supplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (r supplierRepo) GetByRUT(context.Context, string) (*entity.Supplier, error)   { return nil, nil }
func (r supplierRepo) GetByEmail(context.Context, string) (*entity.Supplier, error) { return nil, nil }
func (r supplierRepo) Update(context.Context, *entity.Supplier) error               { return nil }
func (r supplierRepo) Delete(context.Context, string) error                         { return nil }

func (r supplierRepo) List(context.Context, repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	return nil, 0, nil
}

type warehouseRepo struct{ s *memStore }

var _ repository.WarehouseRepository = warehouseRepo{}

func (r warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r warehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r warehouseRepo) GetByCode(context.Context, string) (*entity.Warehouse, error) { return nil, nil }
func (r warehouseRepo) Update(context.Context, *entity.Warehouse) error              { return nil }
func (r warehouseRepo) Delete(context.Context, string) error                         { return nil }
func (r warehouseRepo) List(context.Context) ([]*entity.Warehouse, error)            { return nil, nil }

type sourcingRepo struct{ s *memStore }

var _ repository.ProductSupplierRepository = sourcingRepo{}

func (r sourcingRepo) Create(_ context.Context, ps *entity.ProductSupplier) error {
	r.s.links = append(r.s.links, *ps)
	return nil
}

func (r sourcingRepo) Get(_ context.Context, productID, supplierID string) (*entity.ProductSupplier, error) {
	for _, l := range r.s.links {
		if l.ProductID == productID && l.SupplierID == supplierID {
			return &l, nil
		}
	}
	return nil, nil
}

func (r sourcingRepo) Delete(context.Context, string) error { return nil }

func (r sourcingRepo) ListBySupplier(context.Context, string) ([]*entity.ProductSupplier, error) {
	return nil, nil
}

func (r sourcingRepo) GetPreferred(_ context.Context, productID string) (*entity.ProductSupplier, error) {
	var best *entity.ProductSupplier
	for _, l := range r.s.links {
		l := l
		if l.ProductID != productID {
			continue
		}
		if l.Preferred {
			return &l, nil
		}
		if best == nil || l.Cost.LessThan(best.Cost) {
			best = &l
		}
	}
	return best, nil
}
