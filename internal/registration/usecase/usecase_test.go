package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/putrawicaksana/travelreg/internal/pkg/clock"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

// fakeRepo keeps records in memory scoped by account, enforcing the
// per-account email uniqueness of the real store.
type fakeRepo struct {
	regs []entity.Registration
}

func (f *fakeRepo) CreateRegistration(_ context.Context, in entity.Registration) error {
	for _, reg := range f.regs {
		if reg.AccountID == in.AccountID && reg.Email == in.Email {
			return goerror.ErrConflict
		}
	}
	f.regs = append(f.regs, in)
	return nil
}

func (f *fakeRepo) ListRegistrations(_ context.Context, accountID int64) ([]entity.Registration, error) {
	var out []entity.Registration
	for _, reg := range f.regs {
		if reg.AccountID == accountID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetRegistration(_ context.Context, accountID, id int64) (*entity.Registration, error) {
	for _, reg := range f.regs {
		if reg.AccountID == accountID && reg.ID == id {
			return &reg, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) DeleteRegistration(_ context.Context, accountID, id int64) error {
	for i, reg := range f.regs {
		if reg.AccountID == accountID && reg.ID == id {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return goerror.ErrNotFound
}

func (f *fakeRepo) CountRegistrations(_ context.Context, accountID int64) (int64, error) {
	var count int64
	for _, reg := range f.regs {
		if reg.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

type staticConfig struct{}

func (staticConfig) Close() error                   { return nil }
func (staticConfig) GetString(string) string        { return "" }
func (staticConfig) GetBool(string) bool            { return false }
func (staticConfig) GetInt(string) int              { return 0 }
func (staticConfig) GetInt32(string) int32          { return 0 }
func (staticConfig) GetFloat64(string) float64      { return 0 }
func (staticConfig) GetArray(string) []string       { return nil }
func (staticConfig) GetSecond(string) time.Duration { return 0 }
func (staticConfig) GetMinute(string) time.Duration { return 0 }
func (staticConfig) GetHour(string) time.Duration   { return 0 }

type seqID struct {
	next int64
}

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeRepo) {
	t.Helper()

	valid, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	repo := &fakeRepo{}
	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  valid,
		Config:     staticConfig{},
		UID:        &seqID{},
		Clock:      clock.Fixed{At: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}

func authCtx(accountID int64) context.Context {
	return session.SetAuth(context.Background(), session.Auth{
		AccountID: accountID,
		Username:  "alice",
		Email:     "alice@example.com",
	})
}

func validCreateInput() CreateInput {
	return CreateInput{
		Name:       "Bunga Citra",
		Email:      "bunga@example.com",
		Phone:      "+6281234567890",
		GroupID:    3,
		JoinedDate: "2026-01-15",
		City:       "Bandung",
	}
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

func TestCreate(t *testing.T) {
	// Arrange
	uc, repo := newTestUsecase(t)

	// Act
	out, err := uc.Create(authCtx(7), validCreateInput())

	// Assert
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if out.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if len(repo.regs) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.regs))
	}
	reg := repo.regs[0]
	if reg.AccountID != 7 {
		t.Fatalf("record bound to account %d, want 7", reg.AccountID)
	}
	if reg.JoinedDate == nil || reg.JoinedDate.Format("2006-01-02") != "2026-01-15" {
		t.Fatalf("unexpected joined date: %v", reg.JoinedDate)
	}
}

func TestCreateRequiresAuthentication(t *testing.T) {
	// Arrange
	uc, repo := newTestUsecase(t)

	// Act
	_, err := uc.Create(context.Background(), validCreateInput())

	// Assert
	assertBusinessError(t, err, "Authentication required", goerror.CodeUnauthorized)
	if len(repo.regs) != 0 {
		t.Fatal("an anonymous request must not store a record")
	}
}

func TestCreateBadJoinedDate(t *testing.T) {
	// Arrange
	uc, _ := newTestUsecase(t)
	in := validCreateInput()
	in.JoinedDate = "15-01-2026"

	// Act
	_, err := uc.Create(authCtx(7), in)

	// Assert
	assertBusinessError(t, err, "Invalid date format. Use YYYY-MM-DD", goerror.CodeInvalidFormat)
}

func TestCreateDuplicateEmail(t *testing.T) {
	// Arrange
	uc, _ := newTestUsecase(t)
	if _, err := uc.Create(authCtx(7), validCreateInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Act
	_, err := uc.Create(authCtx(7), validCreateInput())

	// Assert
	assertBusinessError(t, err, "Email already registered", goerror.CodeDuplicate)

	// the same email under another account is fine
	if _, err := uc.Create(authCtx(8), validCreateInput()); err != nil {
		t.Fatalf("create under another account failed: %v", err)
	}
}

func TestListIsScopedToAccount(t *testing.T) {
	// Arrange
	uc, _ := newTestUsecase(t)
	if _, err := uc.Create(authCtx(7), validCreateInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other := validCreateInput()
	other.Email = "citra@example.com"
	if _, err := uc.Create(authCtx(8), other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Act
	regs, err := uc.List(authCtx(7))

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("expected 1 record for the account, got %d", len(regs))
	}
	if regs[0].Email != "bunga@example.com" {
		t.Fatalf("unexpected record: %+v", regs[0])
	}
}

func TestDetailOtherAccountsRecord(t *testing.T) {
	// Arrange
	uc, _ := newTestUsecase(t)
	out, err := uc.Create(authCtx(7), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Act
	_, err = uc.Detail(authCtx(8), DetailInput{ID: out.ID})

	// Assert
	assertBusinessError(t, err, "User not found", goerror.CodeNotFound)
}

func TestDelete(t *testing.T) {
	// Arrange
	uc, repo := newTestUsecase(t)
	out, err := uc.Create(authCtx(7), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Act
	err = uc.Delete(authCtx(7), DeleteInput{ID: out.ID})

	// Assert
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.regs) != 0 {
		t.Fatal("expected the record to be removed")
	}

	// deleting again reports not found
	err = uc.Delete(authCtx(7), DeleteInput{ID: out.ID})
	assertBusinessError(t, err, "User not found", goerror.CodeNotFound)
}

func TestHome(t *testing.T) {
	// Arrange
	uc, _ := newTestUsecase(t)
	if _, err := uc.Create(authCtx(7), validCreateInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Act
	out, err := uc.Home(authCtx(7))

	// Assert
	if err != nil {
		t.Fatalf("home failed: %v", err)
	}
	if out.Registrations != 1 {
		t.Fatalf("registrations = %d, want 1", out.Registrations)
	}
	if out.Username != "alice" {
		t.Fatalf("username = %q, want alice", out.Username)
	}
}
