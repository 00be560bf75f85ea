package usecase

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

func TestSignup(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")

	// Act
	err := f.uc.Signup(ctx, SignupInput{Username: "alice", Email: "Alice@Example.com"})

	// Assert
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if len(f.repo.codes) != 1 {
		t.Fatalf("expected 1 persisted code, got %d", len(f.repo.codes))
	}
	if got := f.repo.codes[0].Email; got != "alice@example.com" {
		t.Fatalf("code email = %q, want lowercased input", got)
	}
	if want := f.clock.at.Add(5 * time.Minute); !f.repo.codes[0].ExpiresAt.Equal(want) {
		t.Fatalf("code expires at %v, want %v", f.repo.codes[0].ExpiresAt, want)
	}
	if len(f.notifier.sent) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(f.notifier.sent))
	}

	state := f.store.states["tok-1"]
	if state == nil || state.Pending == nil {
		t.Fatal("expected a pending challenge in the session")
	}
	if state.Pending.Kind != session.KindSignup || state.Pending.Username != "alice" {
		t.Fatalf("unexpected pending challenge: %+v", state.Pending)
	}
}

func TestSignupTakenIdentity(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")
	if err := f.uc.SignupPassword(ctx, SignupPasswordInput{
		Username: "alice", Email: "alice@example.com",
		Password: "secret123", ConfirmPassword: "secret123",
	}); err != nil {
		t.Fatalf("seed account failed: %v", err)
	}

	// Act
	err := f.uc.Signup(ctx, SignupInput{Username: "alice", Email: "other@example.com"})

	// Assert
	assertBusinessError(t, err, "Username or email already taken", goerror.CodeDuplicate)
	if len(f.repo.codes) != 0 {
		t.Fatalf("duplicate signup must not issue a code, got %d", len(f.repo.codes))
	}
	if len(f.notifier.sent) != 0 {
		t.Fatalf("duplicate signup must not deliver mail, got %d", len(f.notifier.sent))
	}
}

func TestSignupDeliveryFailure(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.notifier.err = errors.New("smtp unreachable")
	ctx := sessionCtx("tok-1")

	// Act
	err := f.uc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com"})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", gerr.StatusCode())
	}
	// the code row stays behind, but no challenge is stored
	if len(f.repo.codes) != 1 {
		t.Fatalf("expected the code to remain persisted, got %d", len(f.repo.codes))
	}
	if _, ok := f.store.states["tok-1"]; ok {
		t.Fatal("delivery failure must not leave a pending challenge")
	}
}

func TestVerifySignup(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")
	if err := f.uc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Act
	err := f.uc.VerifySignup(ctx, VerifySignupInput{OTP: "123456"})

	// Assert
	if err != nil {
		t.Fatalf("verify signup failed: %v", err)
	}
	acc, err := f.repo.GetAccountByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected the account to exist: %v", err)
	}
	if !acc.Passwordless() {
		t.Fatal("passwordless signup must create an account without a hash")
	}

	state := f.store.states["tok-1"]
	if state.Pending != nil {
		t.Fatal("challenge must be cleared after verification")
	}
	if state.Auth != nil {
		t.Fatal("signup verification must not authenticate the session")
	}
}

func TestVerifySignupWrongThenRight(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")
	if err := f.uc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Act
	wrongErr := f.uc.VerifySignup(ctx, VerifySignupInput{OTP: "000000"})
	rightErr := f.uc.VerifySignup(ctx, VerifySignupInput{OTP: "123456"})

	// Assert
	assertBusinessError(t, wrongErr, "invalid or expired OTP", goerror.CodeInvalidInput)
	if rightErr != nil {
		t.Fatalf("a wrong attempt must not burn the code: %v", rightErr)
	}
}

func TestVerifySignupExpiredCode(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")
	if err := f.uc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	f.clock.at = f.clock.at.Add(5*time.Minute + time.Second)

	// Act
	err := f.uc.VerifySignup(ctx, VerifySignupInput{OTP: "123456"})

	// Assert
	assertBusinessError(t, err, "invalid or expired OTP", goerror.CodeInvalidInput)
	if state := f.store.states["tok-1"]; state.Pending == nil {
		t.Fatal("an expired attempt must leave the challenge intact")
	}
}

func TestVerifySignupWithoutChallenge(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")

	// Act
	err := f.uc.VerifySignup(ctx, VerifySignupInput{OTP: "123456"})

	// Assert
	assertBusinessError(t, err, "session expired, start over", goerror.CodeInvalidInput)
}

func TestSignupPassword(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")

	// Act
	err := f.uc.SignupPassword(ctx, SignupPasswordInput{
		Username: "alice", Email: "alice@example.com",
		Password: "secret123", ConfirmPassword: "secret123",
	})

	// Assert
	if err != nil {
		t.Fatalf("signup with password failed: %v", err)
	}
	acc, err := f.repo.GetAccountByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected the account to exist: %v", err)
	}
	if acc.Passwordless() {
		t.Fatal("expected a stored password hash")
	}
	if len(f.repo.codes) != 0 {
		t.Fatal("password signup must not issue a code")
	}
}

func TestSignupPasswordConfirmMismatch(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.SignupPassword(sessionCtx("tok-1"), SignupPasswordInput{
		Username: "alice", Email: "alice@example.com",
		Password: "secret123", ConfirmPassword: "secret124",
	})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Fields()["confirm_password"] == "" {
		t.Fatalf("expected a confirm_password field error, got %v", gerr.Fields())
	}
}
