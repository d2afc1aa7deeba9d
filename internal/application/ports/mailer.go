package ports

import "context"

// Mailer puerto de salida para correo transaccional.
type Mailer interface {
	// SendPasswordReset envía el enlace para restablecer la contraseña.
	SendPasswordReset(ctx context.Context, to, name, link string) error
}
