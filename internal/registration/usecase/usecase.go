package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/putrawicaksana/travelreg/internal/pkg/clock"
	"github.com/putrawicaksana/travelreg/internal/pkg/config"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/uid"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

type repoDB interface {
	CreateRegistration(ctx context.Context, in entity.Registration) error
	ListRegistrations(ctx context.Context, accountID int64) ([]entity.Registration, error)
	GetRegistration(ctx context.Context, accountID, id int64) (*entity.Registration, error)
	DeleteRegistration(ctx context.Context, accountID, id int64) error
	CountRegistrations(ctx context.Context, accountID int64) (int64, error)
}

type Usecase struct {
	repoDB repoDB
	valid  validator.Validator
	cfg    config.Config
	uid    uid.NumberID
	clock  clock.Clocker
	ins    instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB: dep.RepoDB,
		valid:  dep.Validator,
		cfg:    dep.Config,
		uid:    dep.UID,
		clock:  dep.Clock,
		ins:    dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("registration.usecase").Start(ctx, name)
}

// authenticated returns the session identity or an authentication-required
// error before any record is touched.
func (s *Usecase) authenticated(ctx context.Context) (session.Auth, error) {
	auth, ok := session.GetAuth(ctx)
	if !ok {
		return session.Auth{}, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return auth, nil
}
