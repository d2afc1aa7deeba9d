package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el caso de uso).
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=20,alphanum"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"nombres" validate:"max=100"`
	LastName  string `json:"apellidos" validate:"max=100"`
	Phone     string `json:"telefono" validate:"omitempty,phone9"`
	Role      string `json:"rol" validate:"required,oneof=ADMIN OPERADOR PROVEEDOR"`
	Status    string `json:"estado" validate:"required,oneof=ACTIVO BLOQUEADO INACTIVO"`
	MFA       bool   `json:"mfa_habilitado"`
	Area      string `json:"area" validate:"max=100"`
	Notes     string `json:"observaciones" validate:"max=1000"`
}

// UpdateUserRequest igual a la creación; Password vacío conserva la actual.
type UpdateUserRequest struct {
	Username  string `json:"username" validate:"required,max=20,alphanum"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	FirstName string `json:"nombres" validate:"max=100"`
	LastName  string `json:"apellidos" validate:"max=100"`
	Phone     string `json:"telefono" validate:"omitempty,phone9"`
	Role      string `json:"rol" validate:"required,oneof=ADMIN OPERADOR PROVEEDOR"`
	Status    string `json:"estado" validate:"required,oneof=ACTIVO BLOQUEADO INACTIVO"`
	MFA       bool   `json:"mfa_habilitado"`
	Area      string `json:"area" validate:"max=100"`
	Notes     string `json:"observaciones" validate:"max=1000"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"nombres"`
	LastName   string     `json:"apellidos"`
	FullName   string     `json:"nombre"`
	Phone      string     `json:"telefono"`
	Role       string     `json:"rol"`
	Status     string     `json:"estado"`
	MFA        bool       `json:"mfa_habilitado"`
	Area       string     `json:"area"`
	Notes      string     `json:"observaciones"`
	LastAccess *time.Time `json:"ultimo_acceso"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login: username o email más password.
type LoginRequest struct {
	Identifier string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PasswordResetRequest solicitud de enlace de recuperación.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm nueva contraseña con el token recibido por correo.
type PasswordResetConfirm struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Confirm  string `json:"password_confirmacion" validate:"required,eqfield=Password"`
}

// ProfileRequest datos que el propio usuario puede editar en /perfil.
// Password vacío conserva la contraseña; si viene, exige la actual y la confirmación.
type ProfileRequest struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"nombres" validate:"max=100"`
	LastName        string `json:"apellidos" validate:"max=100"`
	Phone           string `json:"telefono" validate:"omitempty,phone9"`
	CurrentPassword string `json:"password_actual"`
	Password        string `json:"password" validate:"omitempty,min=8"`
	Confirm         string `json:"password_confirmacion" validate:"eqfield=Password"`
}
