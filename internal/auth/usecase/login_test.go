package usecase

import (
	"testing"
	"time"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

func seedAccount(t *testing.T, f *fixture) {
	t.Helper()

	err := f.uc.SignupPassword(sessionCtx("seed"), SignupPasswordInput{
		Username: "alice", Email: "alice@example.com",
		Password: "secret123", ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("seed account failed: %v", err)
	}
}

func TestLoginUnregisteredEmail(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.Login(sessionCtx("tok-1"), LoginInput{Email: "nobody@example.com"})

	// Assert
	assertBusinessError(t, err, "email not registered", goerror.CodeUnauthorized)
	if len(f.repo.codes) != 0 {
		t.Fatalf("an unknown email must not receive a code, got %d", len(f.repo.codes))
	}
	if len(f.notifier.sent) != 0 {
		t.Fatalf("an unknown email must not receive mail, got %d", len(f.notifier.sent))
	}
}

func TestLoginAndVerify(t *testing.T) {
	// Arrange
	f := newFixture(t)
	seedAccount(t, f)
	ctx := sessionCtx("tok-1")

	// Act
	if err := f.uc.Login(ctx, LoginInput{Email: "alice@example.com"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	err := f.uc.VerifyLogin(ctx, VerifyLoginInput{OTP: "123456"})

	// Assert
	if err != nil {
		t.Fatalf("verify login failed: %v", err)
	}
	state := f.store.states["tok-1"]
	if state.Auth == nil {
		t.Fatal("verified login must authenticate the session")
	}
	if state.Auth.Username != "alice" || state.Auth.Email != "alice@example.com" {
		t.Fatalf("unexpected session identity: %+v", state.Auth)
	}
	if state.Pending != nil {
		t.Fatal("challenge must be cleared after verification")
	}
}

func TestVerifyLoginReplay(t *testing.T) {
	// Arrange
	f := newFixture(t)
	seedAccount(t, f)
	ctx := sessionCtx("tok-1")
	if err := f.uc.Login(ctx, LoginInput{Email: "alice@example.com"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := f.uc.VerifyLogin(ctx, VerifyLoginInput{OTP: "123456"}); err != nil {
		t.Fatalf("first verification failed: %v", err)
	}

	// Arrange a second challenge against the already consumed code
	f.store.states["tok-1"].Pending = &session.Pending{
		Kind:  session.KindLogin,
		Email: "alice@example.com",
	}

	// Act
	err := f.uc.VerifyLogin(ctx, VerifyLoginInput{OTP: "123456"})

	// Assert
	assertBusinessError(t, err, "invalid or expired OTP", goerror.CodeInvalidInput)
}

func TestLoginOnlyLatestCodeCounts(t *testing.T) {
	// Arrange
	f := newFixture(t)
	seedAccount(t, f)
	ctx := sessionCtx("tok-1")

	if err := f.uc.Login(ctx, LoginInput{Email: "alice@example.com"}); err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	f.repo.codes[0].Digits = "111111" // pretend an older distinct code
	f.clock.at = f.clock.at.Add(time.Minute)
	if err := f.uc.Login(ctx, LoginInput{Email: "alice@example.com"}); err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	// Act
	oldErr := f.uc.VerifyLogin(ctx, VerifyLoginInput{OTP: "111111"})

	// Assert
	assertBusinessError(t, oldErr, "invalid or expired OTP", goerror.CodeInvalidInput)
	if err := f.uc.VerifyLogin(ctx, VerifyLoginInput{OTP: "123456"}); err != nil {
		t.Fatalf("latest code must still verify: %v", err)
	}
}

func TestLoginPassword(t *testing.T) {
	// Arrange
	f := newFixture(t)
	seedAccount(t, f)
	ctx := sessionCtx("tok-1")

	// Act
	err := f.uc.LoginPassword(ctx, LoginPasswordInput{
		Email: "alice@example.com", Password: "secret123",
	})

	// Assert
	if err != nil {
		t.Fatalf("password login failed: %v", err)
	}
	if state := f.store.states["tok-1"]; state.Auth == nil {
		t.Fatal("password login must authenticate the session")
	}
}

func TestLoginPasswordWrongPassword(t *testing.T) {
	// Arrange
	f := newFixture(t)
	seedAccount(t, f)

	// Act
	err := f.uc.LoginPassword(sessionCtx("tok-1"), LoginPasswordInput{
		Email: "alice@example.com", Password: "not-the-password",
	})

	// Assert
	assertBusinessError(t, err, "invalid email or password", goerror.CodeUnauthorized)
}

func TestLoginPasswordAgainstPasswordlessAccount(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := sessionCtx("tok-1")
	if err := f.uc.Signup(ctx, SignupInput{Username: "bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := f.uc.VerifySignup(ctx, VerifySignupInput{OTP: "123456"}); err != nil {
		t.Fatalf("verify signup failed: %v", err)
	}

	// Act
	err := f.uc.LoginPassword(ctx, LoginPasswordInput{
		Email: "bob@example.com", Password: "anything1",
	})

	// Assert
	assertBusinessError(t, err, "invalid email or password", goerror.CodeUnauthorized)
}

func TestLogout(t *testing.T) {
	// Arrange
	f := newFixture(t)
	seedAccount(t, f)
	ctx := sessionCtx("tok-1")
	if err := f.uc.LoginPassword(ctx, LoginPasswordInput{
		Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("password login failed: %v", err)
	}

	// Act
	err := f.uc.Logout(ctx)

	// Assert
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := f.store.states["tok-1"]; ok {
		t.Fatal("logout must delete the session state")
	}
	if err := f.uc.Logout(sessionCtx("missing")); err != nil {
		t.Fatalf("logging out an anonymous session must not fail: %v", err)
	}
}
