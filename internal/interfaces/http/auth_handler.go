package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/auth"
	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
)

const (
	msgBadCredentials = "Usuario o contraseña incorrectos."
	msgInactiveUser   = "La cuenta está bloqueada o inactiva."
	msgResetSent      = "Si el correo está registrado, recibirá un enlace para restablecer su contraseña."
	msgResetDone      = "Contraseña actualizada. Ya puede iniciar sesión."
)

// AuthHandler maneja login, logout y recuperación de contraseña.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	pages *Pages
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, pages *Pages) *AuthHandler {
	return &AuthHandler{uc: uc, pages: pages}
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return h.pages.render(c, "auth/login", fiber.Map{"Title": "Iniciar sesión", "Next": c.Query("next")})
}

// LoginSubmit POST /login. Acepta username o email.
func (h *AuthHandler) LoginSubmit(c *fiber.Ctx) error {
	identifier := formString(c, "username")
	next := safeNext(formString(c, "next"))
	user, err := h.uc.Authenticate(c.UserContext(), identifier, c.FormValue("password"))
	if err != nil {
		msg := msgBadCredentials
		switch {
		case errors.Is(err, domain.ErrForbidden):
			msg = msgInactiveUser
		case !errors.Is(err, domain.ErrUnauthorized):
			return h.pages.fail(c, err)
		}
		c.Status(fiber.StatusUnauthorized)
		return h.pages.render(c, "auth/login", fiber.Map{
			"Title":    "Iniciar sesión",
			"Error":    msg,
			"Username": identifier,
			"Next":     next,
		})
	}
	if err := startSession(c, h.pages.sessions, user); err != nil {
		return h.pages.fail(c, err)
	}
	return c.Redirect(next)
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := endSession(c, h.pages.sessions); err != nil {
		return h.pages.fail(c, err)
	}
	return c.Redirect("/login")
}

// ResetRequestPage GET /password/reset
func (h *AuthHandler) ResetRequestPage(c *fiber.Ctx) error {
	return h.pages.render(c, "auth/password_request", fiber.Map{"Title": "Recuperar contraseña"})
}

// ResetRequestSubmit POST /password/reset. La respuesta no revela si el email existe.
func (h *AuthHandler) ResetRequestSubmit(c *fiber.Ctx) error {
	email := formString(c, "email")
	if email != "" {
		if err := h.uc.RequestPasswordReset(c.UserContext(), email); err != nil {
			h.pages.log.Error().Err(err).Msg("solicitud de recuperación")
		}
	}
	h.pages.flash(c, msgResetSent)
	return c.Redirect("/login")
}

// ResetConfirmPage GET /password/reset/:token
func (h *AuthHandler) ResetConfirmPage(c *fiber.Ctx) error {
	return h.pages.render(c, "auth/password_reset", fiber.Map{"Title": "Nueva contraseña", "Token": c.Params("token")})
}

// ResetConfirmSubmit POST /password/reset/:token
func (h *AuthHandler) ResetConfirmSubmit(c *fiber.Ctx) error {
	in := dto.PasswordResetConfirm{
		Token:    c.Params("token"),
		Password: c.FormValue("password"),
		Confirm:  c.FormValue("password_confirmacion"),
	}
	err := h.uc.ResetPassword(c.UserContext(), in)
	if err == nil {
		h.pages.flash(c, msgResetDone)
		return c.Redirect("/login")
	}
	data := fiber.Map{"Title": "Nueva contraseña", "Token": in.Token}
	if fe, ok := asFieldErrors(err); ok {
		data["Errors"] = fe
	} else if errors.Is(err, domain.ErrInvalidToken) {
		data["Error"] = domain.ErrInvalidToken.Error()
	} else {
		return h.pages.fail(c, err)
	}
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "auth/password_reset", data)
}

// APILogin godoc
// @Summary      Iniciar sesión (token JWT)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username o email, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      400   {object}  dto.APIError
// @Failure      401   {object}  dto.APIError
// @Failure      403   {object}  dto.APIError
// @Router       /api/auth/login [post]
func (h *AuthHandler) APILogin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return apiFail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if strings.TrimSpace(in.Identifier) == "" || in.Password == "" {
		return apiFail(c, fiber.StatusBadRequest, "username y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return apiFail(c, fiber.StatusUnauthorized, "credenciales inválidas")
		case errors.Is(err, domain.ErrForbidden):
			return apiFail(c, fiber.StatusForbidden, "cuenta bloqueada o inactiva")
		}
		return apiError(c, err)
	}
	return apiOK(c, fiber.StatusOK, "Sesión iniciada", out)
}

// safeNext solo acepta rutas locales para evitar redirecciones abiertas.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
