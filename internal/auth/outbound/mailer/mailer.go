// Package mailer delivers verification codes over email.
package mailer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"

	"github.com/putrawicaksana/travelreg/internal/pkg/config"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/mail"
)

type Mailer struct {
	client mail.Mail
	cfg    config.Config
	ins    instrument.Instrumentation
}

func New(client mail.Mail, cfg config.Config, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, cfg: cfg, ins: ins}
}

// SendVerificationCode sends the fixed code template in a single blocking
// attempt. The caller decides how to react to a failure.
func (m *Mailer) SendVerificationCode(ctx context.Context, email, digits string) error {
	ctx, span := m.ins.Tracer("auth.outbound.mailer").Start(ctx, "SendVerificationCode")
	defer span.End()

	minutes := int(m.cfg.GetMinute("modules.auth.otp_ttl_minutes").Minutes())
	if minutes <= 0 {
		minutes = 5
	}

	msg := mail.Message{
		To:      []string{email},
		Subject: "Your verification code",
		TextBody: fmt.Sprintf(
			"Your one-time code is %s.\n\nIt expires in %d minutes. If you did not request it, ignore this email.",
			digits, minutes,
		),
	}

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
