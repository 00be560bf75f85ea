package validator

import (
	"errors"
	"testing"
)

type signupForm struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func TestValidateCustomRules(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	if err := v.Validate(signupForm{
		Username: "alice_01",
		Email:    "alice@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	err = v.Validate(signupForm{
		Username: "a!",
		Email:    "not-an-email",
		Password: "short",
	})
	if err == nil {
		t.Fatal("invalid input accepted")
	}

	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected V10ValidationError, got %T", err)
	}

	for _, field := range []string{"username", "email", "password"} {
		if verr[field] == "" {
			t.Fatalf("expected an error for field %q, got %v", field, verr)
		}
	}
}
