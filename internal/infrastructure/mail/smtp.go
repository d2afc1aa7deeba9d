// Package mail implementa ports.Mailer: envío SMTP o solo registro en el log.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/jhoicas/dulceria-lilis/internal/application/ports"
	"github.com/jhoicas/dulceria-lilis/pkg/config"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*LogMailer)(nil)
)

const resetSubject = "Dulcería Lilis: restablecer contraseña"

// resetBody arma el texto del correo de recuperación.
func resetBody(name, link string) string {
	if name == "" {
		name = "usuario"
	}
	return fmt.Sprintf(`Hola %s,

Recibimos una solicitud para restablecer tu contraseña en Dulcería Lilis.
Abre el siguiente enlace para elegir una nueva:

%s

Si no solicitaste el cambio, ignora este correo.
`, name, link)
}

// SMTPMailer envía correo vía SMTP con autenticación PLAIN.
type SMTPMailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
	log      *logger.Logger
}

// NewSMTPMailer construye el mailer a partir de la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Host,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		log:      log,
	}
}

// SendPasswordReset envía el enlace de recuperación.
func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, name, link string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = resetSubject
	e.Text = []byte(resetBody(name, link))

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", to, err)
	}
	m.log.Info().Str("to", to).Msg("correo de recuperación enviado")
	return nil
}

// LogMailer no envía nada: deja el enlace en el log (desarrollo, SMTP_HOST vacío).
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de desarrollo.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendPasswordReset registra destinatario y enlace.
func (m *LogMailer) SendPasswordReset(_ context.Context, to, _, link string) error {
	m.log.Warn().Str("to", to).Str("link", link).Msg("SMTP no configurado: enlace de recuperación solo en log")
	return nil
}

// New elige SMTPMailer si hay host configurado; si no, LogMailer.
func New(cfg config.SMTPConfig, log *logger.Logger) ports.Mailer {
	if cfg.Host == "" {
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg, log)
}
