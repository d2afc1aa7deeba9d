package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "ADMIN"
	RoleOperador  = "OPERADOR"
	RoleProveedor = "PROVEEDOR"
)

// Estados de usuario. Solo ACTIVO puede iniciar sesión.
const (
	UserActive   = "ACTIVO"
	UserBlocked  = "BLOQUEADO"
	UserInactive = "INACTIVO"
)

var (
	Roles        = []string{RoleAdmin, RoleOperador, RoleProveedor}
	UserStatuses = []string{UserActive, UserBlocked, UserInactive}
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt
	FirstName    string
	LastName     string
	Phone        string
	Role         string
	Status       string
	MFAEnabled   bool
	Area         string
	Notes        string
	LastAccess   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombres y apellidos, o el username si ambos están vacíos.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// IsActive indica si el usuario puede autenticarse.
func (u *User) IsActive() bool {
	return u.Status == UserActive
}
