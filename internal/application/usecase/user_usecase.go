package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/application/validation"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo ADMIN).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// checkUnique username y email (sin distinguir mayúsculas) no pueden repetirse.
func (uc *UserUseCase) checkUnique(ctx context.Context, selfID, username, email string, errs domain.FieldErrors) error {
	if username != "" && !errs.Has("username") {
		u, err := uc.repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u != nil && u.ID != selfID {
			errs.Add("username", "Ya existe un usuario con este nombre de usuario.")
		}
	}
	if email != "" && !errs.Has("email") {
		u, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u != nil && u.ID != selfID {
			errs.Add("email", "Ya existe un usuario con este email.")
		}
	}
	return nil
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Status == "" {
		in.Status = entity.UserActive
	}
	errs := validation.Struct(in)
	if err := uc.checkUnique(ctx, "", in.Username, in.Email, errs); err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         in.Role,
		Status:       in.Status,
		MFAEnabled:   in.MFA,
		Area:         in.Area,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// GetByID obtiene un usuario (nil si no existe).
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// Update actualiza datos y, si viene, la contraseña.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	errs := validation.Struct(in)
	if err := uc.checkUnique(ctx, id, in.Username, in.Email, errs); err != nil {
		return nil, err
	}
	if !errs.Empty() {
		return nil, errs
	}
	u.Username = in.Username
	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Phone = in.Phone
	u.Role = in.Role
	u.Status = in.Status
	u.MFAEnabled = in.MFA
	u.Area = in.Area
	u.Notes = in.Notes
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
			return nil, err
		}
	}
	return ToUserResponse(u), nil
}

// Mensajes del perfil propio.
const (
	MsgCurrentPasswordRequired = "Ingrese su contraseña actual para cambiarla."
	MsgCurrentPasswordWrong    = "La contraseña actual no es correcta."
)

// UpdateProfile edita los datos personales del propio usuario. Rol, estado y username
// no cambian por esta vía.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id string, in dto.ProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	in.Email = strings.TrimSpace(in.Email)
	errs := validation.Struct(in)
	if err := uc.checkUnique(ctx, id, "", in.Email, errs); err != nil {
		return nil, err
	}
	if in.Password != "" {
		switch {
		case in.CurrentPassword == "":
			errs.Add("password_actual", MsgCurrentPasswordRequired)
		case bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)) != nil:
			errs.Add("password_actual", MsgCurrentPasswordWrong)
		}
	}
	if !errs.Empty() {
		return nil, errs
	}

	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Phone = in.Phone
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
			return nil, err
		}
	}
	return ToUserResponse(u), nil
}

// Delete elimina un usuario. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actingUserID, id string) error {
	if actingUserID == id {
		return domain.ErrConflict
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista usuarios filtrando por username, rol y estado.
func (uc *UserUseCase) List(ctx context.Context, search, role, status string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page = page.Normalize()
	list, total, err := uc.repo.List(ctx, repository.UserFilter{
		Search: strings.TrimSpace(search),
		Role:   role,
		Status: status,
		Page:   repository.Page{Limit: page.PerPage, Offset: page.Offset()},
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// ExportTable planilla de usuarios que calzan con el filtro, sin paginar.
func (uc *UserUseCase) ExportTable(ctx context.Context, search, role, status string) (export.Table, error) {
	list, _, err := uc.repo.List(ctx, repository.UserFilter{Search: strings.TrimSpace(search), Role: role, Status: status})
	if err != nil {
		return export.Table{}, err
	}
	return export.Build("Usuarios", export.UserColumns, list), nil
}

// ToUserResponse mapea la entidad a la salida sin el hash de la contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Phone:      u.Phone,
		Role:       u.Role,
		Status:     u.Status,
		MFA:        u.MFAEnabled,
		Area:       u.Area,
		Notes:      u.Notes,
		LastAccess: u.LastAccess,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
