package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/dulceria-lilis/internal/application/ports"
)

var _ ports.TokenStore = (*MemoryStore)(nil)

type entry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore tokens en un mapa del proceso; se pierden al reiniciar. Para desarrollo y tests.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]entry
	now    func() time.Time
}

// NewMemoryStore construye el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]entry), now: time.Now}
}

// Save guarda el token y de paso limpia los vencidos.
func (s *MemoryStore) Save(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, e := range s.tokens {
		if !now.Before(e.expiresAt) {
			delete(s.tokens, k)
		}
	}
	s.tokens[token] = entry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

// Consume devuelve el usuario y borra el token; vencido = "".
func (s *MemoryStore) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tokens[token]
	if !ok {
		return "", nil
	}
	delete(s.tokens, token)
	if !s.now().Before(e.expiresAt) {
		return "", nil
	}
	return e.userID, nil
}
