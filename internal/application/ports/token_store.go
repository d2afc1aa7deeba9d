package ports

import (
	"context"
	"time"
)

// TokenStore guarda tokens de un solo uso (recuperación de contraseña) con expiración.
// Implementaciones: Redis y memoria.
type TokenStore interface {
	// Save asocia el token al usuario durante ttl.
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume devuelve el usuario del token y lo invalida. Token desconocido o vencido: "" sin error.
	Consume(ctx context.Context, token string) (string, error)
}
