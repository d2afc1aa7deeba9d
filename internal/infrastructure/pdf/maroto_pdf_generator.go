// Package pdf genera los documentos imprimibles del inventario con Maroto v2:
// el comprobante de un movimiento y la lista de reposición de stock bajo.
//
// Comprobante (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dulcería Lilis       │  Tipo + N° + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: Nombre + SKU + Cantidad con signo                 │
//	│  DETALLE: Bodegas / Proveedor / Lote / Serie / Documento     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR al detalle + usuario + observación               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 156, Green: 39, Blue: 96}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const businessName = "Dulcería Lilis"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera PDFs con Maroto v2.
type MarotoPDFGenerator struct {
	baseURL string
}

// NewMarotoPDFGenerator construye el generador; baseURL se usa en el QR del comprobante.
func NewMarotoPDFGenerator(baseURL string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{baseURL: baseURL}
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(businessName, true).
		Build()
	return maroto.New(cfg)
}

// GenerateMovementPDF comprobante de un movimiento registrado.
func (g *MarotoPDFGenerator) GenerateMovementPDF(_ context.Context, m *entity.Movement) ([]byte, error) {
	doc := newDocument("Comprobante de movimiento")

	doc.AddRows(movementHeaderRow(m))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	doc.AddRows(productRow(m))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range detailRows(m) {
		doc.AddRows(r)
	}
	doc.AddRows(line.NewRow(3))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	doc.AddRows(g.footerRow(m))

	out, err := doc.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return out.GetBytes(), nil
}

// GenerateReplenishmentPDF lista de reposición de productos con stock bajo.
func (g *MarotoPDFGenerator) GenerateReplenishmentPDF(_ context.Context, items []dto.ReplenishmentSuggestionDTO, at time.Time) ([]byte, error) {
	doc := newDocument("Reposición de stock")

	doc.AddRows(row.New(16).Add(
		col.New(7).Add(text.New(businessName, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		})),
		col.New(5).Add(
			text.New("REPOSICIÓN DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	doc.AddRows(replenishmentHeaderRow())
	for _, r := range replenishmentRows(items) {
		doc.AddRows(r)
	}
	if len(items) == 0 {
		doc.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay productos bajo el umbral de alerta.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}

	out, err := doc.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reposición: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones del comprobante ─────────────────────────────────────────────────

func movementHeaderRow(m *entity.Movement) core.Row {
	title := m.Type
	if m.Type == entity.MovementAjuste {
		title += " (" + m.AdjustmentDirection + ")"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de movimiento de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(m.ID), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+m.CreatedAt.Local().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func productRow(m *entity.Movement) core.Row {
	signed := inventory.StockDelta(m.Type, m.AdjustmentDirection, m.Quantity)
	qtyLabel := m.Quantity.String()
	if m.Type != entity.MovementTransferencia {
		qtyLabel = signed.String()
		if signed.IsPositive() {
			qtyLabel = "+" + qtyLabel
		}
	}
	return row.New(16).Add(
		col.New(9).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(m.ProductName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("SKU: "+m.ProductSKU, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("CANTIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(qtyLabel, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
		),
	)
}

func detailRows(m *entity.Movement) []core.Row {
	var expiry string
	if m.ExpiryDate != nil {
		expiry = m.ExpiryDate.Format("02/01/2006")
	}
	fields := [][2]string{
		{"Bodega origen", nonEmpty(m.OriginLabel(), "—")},
		{"Bodega destino", nonEmpty(m.DestinationLabel(), "—")},
		{"Proveedor", nonEmpty(m.SupplierName, "—")},
		{"Lote", nonEmpty(m.LotCode, "—")},
		{"Vencimiento", nonEmpty(expiry, "—")},
		{"Serie", nonEmpty(m.Serial, "—")},
		{"Documento ref.", nonEmpty(m.DocumentRef, "—")},
	}
	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(f[0]+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(9).Add(text.New(f[1], props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) footerRow(m *entity.Movement) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(g.baseURL+"/inventario/movimientos/"+m.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Registrado por: "+nonEmpty(m.Username, "—"), props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Observación: "+nonEmpty(m.Note, "—"), props.Text{
				Size: 8, Top: 11, Left: 3,
			}),
			text.New("El stock se actualizó al registrar este movimiento.", props.Text{
				Size: 6.5, Top: 30, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── Tabla de reposición ───────────────────────────────────────────────────────

func replenishmentHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("#", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Pedir", 1, align.Right),
		h("Proveedor", 2, align.Left),
		h("Costo est.", 2, align.Right),
	)
}

func replenishmentRows(items []dto.ReplenishmentSuggestionDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Priority), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(it.SKU+" "+it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.CurrentStock.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.Threshold.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.SuggestedOrderQty.String(), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(nonEmpty(it.SupplierName, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+formatMoney(it.EstimatedOrderCost.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
