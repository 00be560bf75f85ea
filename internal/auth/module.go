// Package auth implements account signup and login, both passwordless (one
// time email codes) and password based, on top of server-side sessions.
package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/putrawicaksana/travelreg/internal/auth/inbound"
	"github.com/putrawicaksana/travelreg/internal/auth/outbound/db"
	"github.com/putrawicaksana/travelreg/internal/auth/outbound/mailer"
	"github.com/putrawicaksana/travelreg/internal/auth/usecase"
	"github.com/putrawicaksana/travelreg/internal/pkg/clock"
	"github.com/putrawicaksana/travelreg/internal/pkg/config"
	"github.com/putrawicaksana/travelreg/internal/pkg/hash"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/mail"
	"github.com/putrawicaksana/travelreg/internal/pkg/otp"
	"github.com/putrawicaksana/travelreg/internal/pkg/router"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/uid"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Sessions   session.Store              `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	if err := dbAuth.Migrate(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAuth,
		Notifier:   mailer.New(dep.Mail, dep.Config, dep.Instrument),
		Sessions:   dep.Sessions,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		OTP:        dep.OTP,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
