package http

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

const layout = "layouts/main"

// Mensajes de formularios.
const (
	msgInvalidNumber = "Ingrese un número válido."
	msgInvalidDate   = "Ingrese una fecha válida (AAAA-MM-DD)."
)

// Pages utilidades compartidas por los handlers HTML: sesión, vista y exportación.
type Pages struct {
	sessions *session.Store
	exporter export.TableWriter
	log      *logger.Logger
}

// NewPages construye las utilidades de las páginas HTML.
func NewPages(sessions *session.Store, exporter export.TableWriter, log *logger.Logger) *Pages {
	return &Pages{sessions: sessions, exporter: exporter, log: log}
}

// render agrega usuario, permisos y mensaje flash a los datos de la vista.
func (p *Pages) render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	role := GetRole(c)
	data["User"] = GetUsername(c)
	data["Role"] = role
	data["Can"] = func(perm string) bool { return entity.HasPermission(role, perm) }
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c, p.sessions)
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = domain.FieldErrors{}
	}
	return c.Render(view, data, layout)
}

func (p *Pages) flash(c *fiber.Ctx, msg string) {
	setFlash(c, p.sessions, msg)
}

// fail muestra la página de error: 404 para ErrNotFound, 500 para el resto.
func (p *Pages) fail(c *fiber.Ctx, err error) error {
	status, msg := fiber.StatusInternalServerError, "Ocurrió un error inesperado."
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, msg = fiber.StatusNotFound, "El registro solicitado no existe."
	case errors.Is(err, domain.ErrConflict):
		status, msg = fiber.StatusConflict, "La operación no es posible con el estado actual del registro."
	default:
		p.log.Error().Err(err).Str("path", c.Path()).Msg("error en página")
	}
	c.Status(status)
	return p.render(c, "errors/error", fiber.Map{
		"Title":   "Error",
		"Status":  status,
		"Message": msg,
	})
}

// sendTable descarga la planilla como adjunto "<base>_AAAAMMDD_HHMM.xlsx".
func (p *Pages) sendTable(c *fiber.Ctx, tbl export.Table, base string) error {
	var buf bytes.Buffer
	if err := p.exporter.Write(c.UserContext(), &buf, tbl); err != nil {
		return p.fail(c, err)
	}
	name := export.FileName(base, p.exporter.Extension(), time.Now())
	p.log.Info().Str("archivo", name).Int("filas", len(tbl.Rows)).Str("user", GetUsername(c)).Msg("exportación")
	c.Set(fiber.HeaderContentType, p.exporter.ContentType())
	c.Attachment(name)
	return c.Send(buf.Bytes())
}

func wantsExport(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Query("export"), "xlsx")
}

// pageFromQuery lee page y pp del query string.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Page: c.QueryInt("page", 1), PerPage: c.QueryInt("pp", dto.DefaultPageSize)}.Normalize()
}

// filterQuery arma el query string de los filtros activos (sin page) para los enlaces de paginación.
func filterQuery(c *fiber.Ctx, keys ...string) string {
	v := url.Values{}
	for _, k := range keys {
		if s := strings.TrimSpace(c.Query(k)); s != "" {
			v.Set(k, s)
		}
	}
	return v.Encode()
}

// asFieldErrors extrae los errores por campo de un error de caso de uso.
func asFieldErrors(err error) (domain.FieldErrors, bool) {
	var fe domain.FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ── Lectura de formularios ──────────────────────────────────────────────────

func formString(c *fiber.Ctx, key string) string {
	return strings.TrimSpace(c.FormValue(key))
}

func formBool(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(formString(c, key)) {
	case "on", "true", "1", "si", "sí":
		return true
	}
	return false
}

// formDecimal vacío = 0; inválido agrega error al campo.
func formDecimal(c *fiber.Ctx, key string, errs domain.FieldErrors) decimal.Decimal {
	d := formOptDecimal(c, key, errs)
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func formDecimalDefault(c *fiber.Ctx, key string, def decimal.Decimal, errs domain.FieldErrors) decimal.Decimal {
	d := formOptDecimal(c, key, errs)
	if d == nil {
		return def
	}
	return *d
}

// formOptDecimal vacío = nil. Acepta coma decimal.
func formOptDecimal(c *fiber.Ctx, key string, errs domain.FieldErrors) *decimal.Decimal {
	s := strings.ReplaceAll(formString(c, key), ",", ".")
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		errs.Add(key, msgInvalidNumber)
		return nil
	}
	return &d
}

func formInt(c *fiber.Ctx, key string, def int, errs domain.FieldErrors) int {
	s := formString(c, key)
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.Equal(d.Truncate(0)) {
		errs.Add(key, msgInvalidNumber)
		return def
	}
	return int(d.IntPart())
}

// formDate fecha AAAA-MM-DD; vacío = nil.
func formDate(c *fiber.Ctx, key string, errs domain.FieldErrors) *time.Time {
	s := formString(c, key)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		errs.Add(key, msgInvalidDate)
		return nil
	}
	return &t
}
