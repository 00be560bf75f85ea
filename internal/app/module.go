package app

import (
	"log/slog"
	"os"

	"github.com/putrawicaksana/travelreg/internal/auth"
	"github.com/putrawicaksana/travelreg/internal/registration"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(a.ctx, auth.Dependency{
			DBConn:     a.dbConn,
			Sessions:   a.sessions,
			Mail:       a.mail,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			OTP:        a.otp,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.registration.enabled") {
		if err := registration.New(a.ctx, registration.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module registration", "error", err)
			os.Exit(1)
		}
	}
}
