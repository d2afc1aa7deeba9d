package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/pkg/jwt"
)

// Locals keys del usuario autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
	localHTML     = "html"
)

// AuthMiddleware valida el Bearer Token JWT de la API y deja usuario y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apiDeny(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apiDeny(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return apiDeny(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return apiDeny(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// SessionAuth exige una sesión iniciada en las páginas HTML.
// Sin sesión redirige a /login conservando la ruta pedida en "next".
func SessionAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		userID, _ := sess.Get(sessUserID).(string)
		if userID == "" {
			return c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, sess.Get(sessUsername))
		c.Locals(LocalRole, sess.Get(sessRole))
		c.Locals(localHTML, true)
		return c.Next()
	}
}

// RequirePermission autoriza la ruta solo si el rol del usuario tiene la capacidad perm.
// Debe usarse después de AuthMiddleware o SessionAuth.
func RequirePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			if isHTML(c) {
				return c.Redirect("/login")
			}
			return apiDeny(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no incluye rol")
		}
		if !entity.HasPermission(role, perm) {
			if isHTML(c) {
				return c.Status(fiber.StatusForbidden).Render("errors/error", fiber.Map{
					"Title":   "Acceso denegado",
					"Status":  fiber.StatusForbidden,
					"Message": "No tiene permisos para acceder a esta sección.",
					"User":    GetUsername(c),
					"Role":    role,
					"Can":     func(p string) bool { return entity.HasPermission(role, p) },
				}, layout)
			}
			return apiDeny(c, fiber.StatusForbidden, "FORBIDDEN", "permiso requerido: "+perm)
		}
		return c.Next()
	}
}

func apiDeny(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.APIError{
		Status: status,
		Error:  dto.ErrorResponse{Code: code, Message: msg},
	})
}

func isHTML(c *fiber.Ctx) bool {
	v, _ := c.Locals(localHTML).(bool)
	return v
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el ID del usuario autenticado.
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUsername devuelve el username del usuario autenticado.
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }
