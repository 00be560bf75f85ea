// Package registration implements owner-scoped travel-registration records.
package registration

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/putrawicaksana/travelreg/internal/pkg/clock"
	"github.com/putrawicaksana/travelreg/internal/pkg/config"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/router"
	"github.com/putrawicaksana/travelreg/internal/pkg/uid"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
	"github.com/putrawicaksana/travelreg/internal/registration/inbound"
	"github.com/putrawicaksana/travelreg/internal/registration/outbound/db"
	"github.com/putrawicaksana/travelreg/internal/registration/usecase"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbReg := db.NewDB(dep.DBConn, dep.Instrument)
	if err := dbReg.Migrate(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbReg,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
