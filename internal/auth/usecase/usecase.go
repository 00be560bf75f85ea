package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
	"github.com/putrawicaksana/travelreg/internal/pkg/clock"
	"github.com/putrawicaksana/travelreg/internal/pkg/config"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/hash"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/otp"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/uid"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
)

type repoDB interface {
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetAccountByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error)
	CreateAccount(ctx context.Context, in entity.Account) error
	CreateCode(ctx context.Context, in entity.OneTimeCode) error
	ConsumeLatestCode(ctx context.Context, email, candidate string, now time.Time) (entity.CodeVerdict, error)
}

type repoNotifier interface {
	SendVerificationCode(ctx context.Context, email, digits string) error
}

type Usecase struct {
	repoDB   repoDB
	notifier repoNotifier
	sessions session.Store
	valid    validator.Validator
	cfg      config.Config
	bcrypt   hash.Hash
	otp      otp.Generator
	uid      uid.NumberID
	clock    clock.Clocker
	ins      instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Notifier   repoNotifier
	Sessions   session.Store
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	OTP        otp.Generator
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:   dep.RepoDB,
		notifier: dep.Notifier,
		sessions: dep.Sessions,
		valid:    dep.Validator,
		cfg:      dep.Config,
		bcrypt:   dep.Bcrypt,
		otp:      dep.OTP,
		uid:      dep.UID,
		clock:    dep.Clock,
		ins:      dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

func (s *Usecase) sessionTTL() time.Duration {
	return s.cfg.GetHour("modules.auth.session_ttl_hours")
}

func (s *Usecase) codeTTL() time.Duration {
	return s.cfg.GetMinute("modules.auth.otp_ttl_minutes")
}

// issueAndSend persists a fresh code for email and attempts delivery. The
// code is written before the send is attempted, so a delivery failure leaves
// a valid but unusable record behind.
func (s *Usecase) issueAndSend(ctx context.Context, email string) error {
	digits, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return goerror.NewServer(err)
	}

	now := s.clock.Now()
	code := entity.OneTimeCode{
		ID:        s.uid.Generate(),
		Email:     email,
		Digits:    digits,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.codeTTL()),
	}

	if err := s.repoDB.CreateCode(ctx, code); err != nil {
		slog.ErrorContext(ctx, "failed to repo create code", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.notifier.SendVerificationCode(ctx, email, digits); err != nil {
		slog.ErrorContext(ctx, "failed to deliver verification code", "email", email, "error", err)
		return goerror.NewDelivery(err)
	}

	return nil
}

// loadSession returns the session token from context and the stored state.
// A missing store entry yields an empty state rather than an error.
func (s *Usecase) loadSession(ctx context.Context) (string, *session.State, error) {
	token, ok := session.GetToken(ctx)
	if !ok {
		return "", nil, goerror.NewBusiness("session expired, start over", goerror.CodeInvalidInput)
	}

	state, err := s.sessions.Load(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return token, &session.State{}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load session", "error", err)
		return "", nil, goerror.NewServer(err)
	}

	return token, state, nil
}

func (s *Usecase) saveSession(ctx context.Context, token string, state *session.State) error {
	if err := s.sessions.Save(ctx, token, state, s.sessionTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to save session", "error", err)
		return goerror.NewServer(err)
	}
	return nil
}
