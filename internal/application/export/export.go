// Package export arma las tablas de las planillas descargables (productos, proveedores,
// movimientos y usuarios). El formato de archivo lo resuelve un TableWriter.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// Column encabezado y extractor de valor de una columna.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Table datos listos para escribir: una hoja con encabezados y filas.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// TableWriter escribe una tabla en un formato de archivo (xlsx).
type TableWriter interface {
	Write(ctx context.Context, w io.Writer, t Table) error
	ContentType() string
	Extension() string
}

// Build aplica las columnas a cada elemento.
func Build[T any](sheet string, cols []Column[T], items []T) Table {
	t := Table{Sheet: sheet, Headers: make([]string, len(cols)), Rows: make([][]any, 0, len(items))}
	for i, c := range cols {
		t.Headers[i] = c.Header
	}
	for _, it := range items {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c.Value(it)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FileName "<base>_AAAAMMDD_HHMM.<ext>".
func FileName(base, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", base, at.Format("20060102_1504"), ext)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func num(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func optNum(d decimal.Decimal) any {
	if d.IsZero() {
		return ""
	}
	return num(d)
}

// ProductColumns columnas de la planilla de productos.
var ProductColumns = []Column[*entity.Product]{
	{"SKU", func(p *entity.Product) any { return p.SKU }},
	{"Nombre", func(p *entity.Product) any { return p.Name }},
	{"Categoría", func(p *entity.Product) any { return p.Category }},
	{"Marca", func(p *entity.Product) any { return p.Brand }},
	{"Modelo", func(p *entity.Product) any { return p.Model }},
	{"UOM Compra", func(p *entity.Product) any { return p.UOMPurchase }},
	{"UOM Venta", func(p *entity.Product) any { return p.UOMSale }},
	{"Factor conversión", func(p *entity.Product) any { return num(p.ConversionFactor) }},
	{"Costo estándar", func(p *entity.Product) any { return optNum(p.StandardCost) }},
	{"Costo promedio", func(p *entity.Product) any { return optNum(p.AverageCost) }},
	{"Precio venta", func(p *entity.Product) any { return optNum(p.SalePrice) }},
	{"IVA %", func(p *entity.Product) any { return optNum(p.TaxRate) }},
	{"Stock actual", func(p *entity.Product) any { return num(p.CurrentStock) }},
	{"Stock mínimo", func(p *entity.Product) any { return num(p.MinStock) }},
	{"Stock máximo", func(p *entity.Product) any { return optNum(p.MaxStock) }},
	{"Punto de reorden", func(p *entity.Product) any {
		if p.ReorderPoint == nil {
			return ""
		}
		return num(*p.ReorderPoint)
	}},
	{"Perecible", func(p *entity.Product) any { return yesNo(p.Perishable) }},
	{"Control por lote", func(p *entity.Product) any { return yesNo(p.LotTracked) }},
	{"Control por serie", func(p *entity.Product) any { return yesNo(p.SerialTracked) }},
	{"Imagen URL", func(p *entity.Product) any { return p.ImageURL }},
	{"Ficha técnica URL", func(p *entity.Product) any { return p.DatasheetURL }},
}

// SupplierColumns columnas de la planilla de proveedores.
var SupplierColumns = []Column[*entity.Supplier]{
	{"RUT/NIF", func(s *entity.Supplier) any { return s.RUT }},
	{"Razón social", func(s *entity.Supplier) any { return s.LegalName }},
	{"Nombre fantasía", func(s *entity.Supplier) any { return s.TradeName }},
	{"Email", func(s *entity.Supplier) any { return s.Email }},
	{"Teléfono", func(s *entity.Supplier) any { return s.Phone }},
	{"Ciudad", func(s *entity.Supplier) any { return s.City }},
	{"País", func(s *entity.Supplier) any { return s.Country }},
	{"Condiciones de pago", func(s *entity.Supplier) any { return s.PaymentTerms }},
	{"Moneda", func(s *entity.Supplier) any { return s.Currency }},
	{"Contacto principal", func(s *entity.Supplier) any { return s.ContactName }},
	{"Estado", func(s *entity.Supplier) any { return s.Status }},
}

// MovementColumns columnas de la planilla de movimientos.
var MovementColumns = []Column[*entity.Movement]{
	{"Fecha", func(m *entity.Movement) any { return m.CreatedAt.Local().Format("2006-01-02 15:04") }},
	{"Tipo", func(m *entity.Movement) any { return m.Type }},
	{"Producto", func(m *entity.Movement) any { return m.ProductName }},
	{"Cantidad", func(m *entity.Movement) any { return num(m.Quantity) }},
	{"Bodega Origen", func(m *entity.Movement) any { return m.OriginLabel() }},
	{"Bodega Destino", func(m *entity.Movement) any { return m.DestinationLabel() }},
	{"Documento Ref.", func(m *entity.Movement) any { return m.DocumentRef }},
	{"Serie", func(m *entity.Movement) any { return m.Serial }},
	{"Lote", func(m *entity.Movement) any { return m.LotCode }},
	{"Observación", func(m *entity.Movement) any { return m.Note }},
	{"Usuario", func(m *entity.Movement) any { return m.Username }},
}

// UserColumns columnas de la planilla de usuarios.
var UserColumns = []Column[*entity.User]{
	{"Username", func(u *entity.User) any { return u.Username }},
	{"Email", func(u *entity.User) any { return u.Email }},
	{"Nombre", func(u *entity.User) any { return u.FullName() }},
	{"Teléfono", func(u *entity.User) any { return u.Phone }},
	{"Rol", func(u *entity.User) any { return u.Role }},
	{"Estado", func(u *entity.User) any { return u.Status }},
	{"Área", func(u *entity.User) any { return u.Area }},
	{"MFA habilitado", func(u *entity.User) any { return yesNo(u.MFAEnabled) }},
	{"Último acceso", func(u *entity.User) any {
		if u.LastAccess == nil {
			return ""
		}
		return u.LastAccess.Local().Format("2006-01-02 15:04")
	}},
}
