package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nahuelfigueredo/app-web-doctor/internal/config"
	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
)

type Service interface {
	SendBookingConfirmation(ctx context.Context, turno *model.Turno) error
}

// NewNoop returns the mailer used when no SMTP host is configured.
func NewNoop() Service {
	return noopService{}
}

type noopService struct{}

func (noopService) SendBookingConfirmation(ctx context.Context, turno *model.Turno) error {
	return nil
}

type mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) Service {
	return &mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *mailer) SendBookingConfirmation(ctx context.Context, turno *model.Turno) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", turno.Email)
	msg.SetHeader("Subject", "Solicitud de turno recibida")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\nRecibimos tu solicitud de turno para el %s a las %s.\n"+
			"El estado actual es %q. Te avisaremos cuando el médico lo confirme.\n",
		turno.Nombre, turno.Fecha, turno.Hora, turno.Estado,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}
	return nil
}
