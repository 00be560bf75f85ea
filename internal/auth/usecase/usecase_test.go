package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/hash"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
)

// fakeRepo keeps accounts and codes in memory and mirrors the store's
// consume semantics: only the latest code per email is reachable and a
// matching code is burned in the same call.
type fakeRepo struct {
	accounts         map[string]entity.Account // keyed by email
	codes            []entity.OneTimeCode
	createAccountErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: map[string]entity.Account{}}
}

func (f *fakeRepo) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	acc, ok := f.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &acc, nil
}

func (f *fakeRepo) GetAccountByUsernameOrEmail(_ context.Context, username, email string) (*entity.Account, error) {
	for _, acc := range f.accounts {
		if acc.Username == username || acc.Email == email {
			return &acc, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) CreateAccount(_ context.Context, in entity.Account) error {
	if f.createAccountErr != nil {
		return f.createAccountErr
	}
	for _, acc := range f.accounts {
		if acc.Username == in.Username || acc.Email == in.Email {
			return goerror.ErrConflict
		}
	}
	f.accounts[in.Email] = in
	return nil
}

func (f *fakeRepo) CreateCode(_ context.Context, in entity.OneTimeCode) error {
	f.codes = append(f.codes, in)
	return nil
}

func (f *fakeRepo) ConsumeLatestCode(_ context.Context, email, candidate string, now time.Time) (entity.CodeVerdict, error) {
	latest := -1
	for i, c := range f.codes {
		if c.Email != email {
			continue
		}
		if latest == -1 || c.IssuedAt.After(f.codes[latest].IssuedAt) {
			latest = i
		}
	}
	if latest == -1 {
		return 0, goerror.ErrNotFound
	}

	verdict := f.codes[latest].Check(now, candidate)
	if verdict == entity.VerdictOK {
		f.codes[latest].Consumed = true
	}
	return verdict, nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) SendVerificationCode(_ context.Context, email, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type memStore struct {
	states map[string]*session.State
}

func newMemStore() *memStore {
	return &memStore{states: map[string]*session.State{}}
}

func (m *memStore) Load(_ context.Context, token string) (*session.State, error) {
	state, ok := m.states[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return state, nil
}

func (m *memStore) Save(_ context.Context, token string, state *session.State, _ time.Duration) error {
	m.states[token] = state
	return nil
}

func (m *memStore) Delete(_ context.Context, token string) error {
	delete(m.states, token)
	return nil
}

type staticConfig struct{}

func (staticConfig) Close() error                  { return nil }
func (staticConfig) GetString(string) string       { return "" }
func (staticConfig) GetBool(string) bool           { return false }
func (staticConfig) GetInt(string) int             { return 0 }
func (staticConfig) GetInt32(string) int32         { return 0 }
func (staticConfig) GetFloat64(string) float64     { return 0 }
func (staticConfig) GetArray(string) []string      { return nil }
func (staticConfig) GetSecond(string) time.Duration { return 0 }
func (staticConfig) GetMinute(string) time.Duration { return 5 * time.Minute }
func (staticConfig) GetHour(string) time.Duration   { return 24 * time.Hour }

type staticOTP struct {
	code string
}

func (s staticOTP) Generate() (string, error) { return s.code, nil }

type seqID struct {
	next int64
}

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

// stepClock is a settable time source so one test can issue a code and then
// jump past its expiry.
type stepClock struct {
	at time.Time
}

func (c *stepClock) Now() time.Time { return c.at }

type fixture struct {
	uc       *Usecase
	repo     *fakeRepo
	notifier *fakeNotifier
	store    *memStore
	clock    *stepClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	valid, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	f := &fixture{
		repo:     newFakeRepo(),
		notifier: &fakeNotifier{},
		store:    newMemStore(),
		clock:    &stepClock{at: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)},
	}

	f.uc = New(Dependency{
		RepoDB:     f.repo,
		Notifier:   f.notifier,
		Sessions:   f.store,
		Validator:  valid,
		Config:     staticConfig{},
		Bcrypt:     hash.NewBcrypt(4),
		OTP:        staticOTP{code: "123456"},
		UID:        &seqID{},
		Clock:      f.clock,
		Instrument: instrument.NewNoop(),
	})

	return f
}

func sessionCtx(token string) context.Context {
	return session.SetToken(context.Background(), token)
}

func assertBusinessError(t *testing.T, err error, msg string, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Msg() != msg {
		t.Fatalf("error message = %q, want %q", gerr.Msg(), msg)
	}
	if gerr.Code() != code {
		t.Fatalf("error code = %s, want %s", gerr.Code(), code)
	}
}
