package inbound

import (
	"log/slog"
	"net/http"

	"github.com/putrawicaksana/travelreg/internal/auth/usecase"
	"github.com/putrawicaksana/travelreg/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// Signup starts a passwordless signup and emails a one-time code.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
	}); err != nil {
		return nil, err
	}

	return SignupResponse{}, nil
}

// VerifySignup consumes the emailed code and creates the account.
func (h *HTTPEndpoint) VerifySignup(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifySignup(r.Context(), usecase.VerifySignupInput{OTP: req.OTP}); err != nil {
		return nil, err
	}

	return VerifySignupResponse{}, nil
}

// Login starts a passwordless login and emails a one-time code.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Login(r.Context(), usecase.LoginInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return LoginResponse{}, nil
}

// VerifyLogin consumes the emailed code and authenticates the session.
func (h *HTTPEndpoint) VerifyLogin(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyLogin(r.Context(), usecase.VerifyLoginInput{OTP: req.OTP}); err != nil {
		return nil, err
	}

	return VerifyLoginResponse{}, nil
}

// SignupPassword creates an account with a password, no code involved.
func (h *HTTPEndpoint) SignupPassword(r *router.Request) (any, error) {
	var req SignupPasswordRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SignupPassword(r.Context(), usecase.SignupPasswordInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return nil, err
	}

	return SignupPasswordResponse{}, nil
}

// LoginPassword authenticates the session with email and password.
func (h *HTTPEndpoint) LoginPassword(r *router.Request) (any, error) {
	var req LoginPasswordRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.LoginPassword(r.Context(), usecase.LoginPasswordInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return LoginPasswordResponse{}, nil
}

// Logout clears the session and redirects to the login entry point.
func (h *HTTPEndpoint) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Logout(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "failed to logout session", "error", err)
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
