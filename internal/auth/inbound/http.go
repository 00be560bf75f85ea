package inbound

import (
	"context"
	"net/http"

	"github.com/putrawicaksana/travelreg/internal/auth/usecase"
	"github.com/putrawicaksana/travelreg/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) error
	VerifySignup(ctx context.Context, in usecase.VerifySignupInput) error
	Login(ctx context.Context, in usecase.LoginInput) error
	VerifyLogin(ctx context.Context, in usecase.VerifyLoginInput) error

	SignupPassword(ctx context.Context, in usecase.SignupPasswordInput) error
	LoginPassword(ctx context.Context, in usecase.LoginPasswordInput) error

	Logout(ctx context.Context) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Passwordless (one-time code) flows
	r.POST("/signup", end.Signup)
	r.POST("/verify-otp-signup", end.VerifySignup)
	r.POST("/login", end.Login)
	r.POST("/verify-otp-login", end.VerifyLogin)

	// Password flows
	r.POST("/signup/password", end.SignupPassword)
	r.POST("/login/password", end.LoginPassword)

	r.GETRaw("/logout", http.HandlerFunc(end.Logout))
}
