package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// UserHandler administración de usuarios (solo ADMIN).
type UserHandler struct {
	uc    *usecase.UserUseCase
	pages *Pages
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, pages *Pages) *UserHandler {
	return &UserHandler{uc: uc, pages: pages}
}

func userForm(c *fiber.Ctx) dto.UpdateUserRequest {
	return dto.UpdateUserRequest{
		Username:  formString(c, "username"),
		Email:     formString(c, "email"),
		Password:  c.FormValue("password"),
		FirstName: formString(c, "nombres"),
		LastName:  formString(c, "apellidos"),
		Phone:     formString(c, "telefono"),
		Role:      formString(c, "rol"),
		Status:    formString(c, "estado"),
		MFA:       formBool(c, "mfa_habilitado"),
		Area:      formString(c, "area"),
		Notes:     formString(c, "observaciones"),
	}
}

func userChoices(data fiber.Map) fiber.Map {
	data["Roles"] = entity.Roles
	data["Statuses"] = entity.UserStatuses
	return data
}

func (h *UserHandler) listData(c *fiber.Ctx) (fiber.Map, error) {
	list, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("rol"), c.Query("estado"), pageFromQuery(c))
	if err != nil {
		return nil, err
	}
	return userChoices(fiber.Map{
		"Title":     "Usuarios",
		"Users":     list.Items,
		"Page":      list.Page,
		"PageSizes": dto.PageSizes,
		"Query":     filterQuery(c, "q", "rol", "estado", "pp"),
		"Search":    c.Query("q"),
		"FRole":     c.Query("rol"),
		"FStatus":   c.Query("estado"),
		"Form":      dto.UpdateUserRequest{Role: entity.RoleOperador, Status: entity.UserActive},
	}), nil
}

// List GET /usuarios (?export=xlsx)
func (h *UserHandler) List(c *fiber.Ctx) error {
	if wantsExport(c) {
		tbl, err := h.uc.ExportTable(c.UserContext(), c.Query("q"), c.Query("rol"), c.Query("estado"))
		if err != nil {
			return h.pages.fail(c, err)
		}
		return h.pages.sendTable(c, tbl, "usuarios")
	}
	data, err := h.listData(c)
	if err != nil {
		return h.pages.fail(c, err)
	}
	return h.pages.render(c, "users/list", data)
}

// Create POST /usuarios
func (h *UserHandler) Create(c *fiber.Ctx) error {
	in := userForm(c)
	out, err := h.uc.Create(c.UserContext(), dto.CreateUserRequest(in))
	if err == nil {
		h.pages.flash(c, "Usuario "+out.Username+" creado.")
		return c.Redirect("/usuarios")
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	data, lerr := h.listData(c)
	if lerr != nil {
		return h.pages.fail(c, lerr)
	}
	in.Password = ""
	data["Form"] = in
	data["Errors"] = fe
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "users/list", data)
}

// EditPage GET /usuarios/:id/editar
func (h *UserHandler) EditPage(c *fiber.Ctx) error {
	u, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if u == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	return h.pages.render(c, "users/edit", userChoices(fiber.Map{
		"Title": "Editar usuario",
		"ID":    u.ID,
		"Form": dto.UpdateUserRequest{
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
			Role:      u.Role,
			Status:    u.Status,
			MFA:       u.MFA,
			Area:      u.Area,
			Notes:     u.Notes,
		},
	}))
}

// Update POST /usuarios/:id/editar. Contraseña vacía conserva la actual.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in := userForm(c)
	_, err := h.uc.Update(c.UserContext(), id, in)
	if err == nil {
		h.pages.flash(c, "Usuario actualizado.")
		return c.Redirect("/usuarios")
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	in.Password = ""
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "users/edit", userChoices(fiber.Map{
		"Title":  "Editar usuario",
		"ID":     id,
		"Form":   in,
		"Errors": fe,
	}))
}

// Delete POST /usuarios/:id/eliminar
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"))
	if errors.Is(err, domain.ErrConflict) {
		h.pages.flash(c, "No puede eliminar su propio usuario.")
		return c.Redirect("/usuarios")
	}
	if err != nil {
		return h.pages.fail(c, err)
	}
	h.pages.flash(c, "Usuario eliminado.")
	return c.Redirect("/usuarios")
}

// ProfilePage GET /perfil: datos del usuario en sesión.
func (h *UserHandler) ProfilePage(c *fiber.Ctx) error {
	u, err := h.uc.GetByID(c.UserContext(), GetUserID(c))
	if err != nil {
		return h.pages.fail(c, err)
	}
	if u == nil {
		return h.pages.fail(c, domain.ErrNotFound)
	}
	return h.pages.render(c, "users/profile", fiber.Map{
		"Title":   "Mi perfil",
		"Profile": u,
		"Form": dto.ProfileRequest{
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
		},
	})
}

// ProfileUpdate POST /perfil
func (h *UserHandler) ProfileUpdate(c *fiber.Ctx) error {
	in := dto.ProfileRequest{
		Email:           formString(c, "email"),
		FirstName:       formString(c, "nombres"),
		LastName:        formString(c, "apellidos"),
		Phone:           formString(c, "telefono"),
		CurrentPassword: c.FormValue("password_actual"),
		Password:        c.FormValue("password"),
		Confirm:         c.FormValue("password_confirmacion"),
	}
	_, err := h.uc.UpdateProfile(c.UserContext(), GetUserID(c), in)
	if err == nil {
		h.pages.flash(c, "Perfil actualizado.")
		return c.Redirect("/perfil")
	}
	fe, ok := asFieldErrors(err)
	if !ok {
		return h.pages.fail(c, err)
	}
	cur, gerr := h.uc.GetByID(c.UserContext(), GetUserID(c))
	if gerr != nil {
		return h.pages.fail(c, gerr)
	}
	in.CurrentPassword, in.Password, in.Confirm = "", "", ""
	c.Status(fiber.StatusBadRequest)
	return h.pages.render(c, "users/profile", fiber.Map{
		"Title":   "Mi perfil",
		"Profile": cur,
		"Form":    in,
		"Errors":  fe,
	})
}
