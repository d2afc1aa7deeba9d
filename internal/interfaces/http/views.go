package http

import (
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
)

// NewViews motor de plantillas HTML de web/templates con las funciones de formato.
// reload=true vuelve a leer las plantillas en cada render (desarrollo).
func NewViews(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFuncMap(map[string]interface{}{
		"dec":      formatDecimal,
		"decp":     formatOptDecimal,
		"date":     formatDate,
		"datetime": formatDateTime,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"fieldErr": fieldErr,
		"hasErr":   func(errs domain.FieldErrors, field string) bool { return errs.Has(field) },
	})
	return engine
}

// formatDecimal sin ceros de relleno: 12.50 -> "12.5".
func formatDecimal(d decimal.Decimal) string {
	return d.String()
}

func formatOptDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// formatDate AAAA-MM-DD, vacío para nil (sirve para inputs type=date).
func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02-01-2006 15:04")
}

func fieldErr(errs domain.FieldErrors, field string) string {
	return strings.Join(errs[field], " ")
}
