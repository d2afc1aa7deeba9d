package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

// Claves guardadas en la sesión HTML.
const (
	sessUserID   = "user_id"
	sessUsername = "username"
	sessRole     = "role"
	sessFlash    = "flash"
)

// NewSessionStore crea el almacén de sesiones de las páginas HTML (cookie HttpOnly).
func NewSessionStore(cookieName string, ttl time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cookieName,
		Expiration:     ttl,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}

// startSession regenera la sesión y guarda el usuario autenticado.
func startSession(c *fiber.Ctx, store *session.Store, u *entity.User) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessUserID, u.ID)
	sess.Set(sessUsername, u.Username)
	sess.Set(sessRole, u.Role)
	return sess.Save()
}

func endSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// setFlash deja un mensaje para la próxima página renderizada.
func setFlash(c *fiber.Ctx, store *session.Store, msg string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set(sessFlash, msg)
	_ = sess.Save()
}

func popFlash(c *fiber.Ctx, store *session.Store) string {
	sess, err := store.Get(c)
	if err != nil {
		return ""
	}
	msg, _ := sess.Get(sessFlash).(string)
	if msg != "" {
		sess.Delete(sessFlash)
		_ = sess.Save()
	}
	return msg
}
