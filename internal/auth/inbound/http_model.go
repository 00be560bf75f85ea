package inbound

import "net/http"

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SignupResponse struct{}

func (SignupResponse) Message() string { return "OTP sent" }

func (SignupResponse) Data() any { return nil }

type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

type VerifySignupResponse struct{}

func (VerifySignupResponse) Message() string { return "Registration successful! Please login." }

func (VerifySignupResponse) StatusCode() int { return http.StatusCreated }

func (VerifySignupResponse) Data() any { return nil }

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct{}

func (LoginResponse) Message() string { return "OTP sent" }

func (LoginResponse) Data() any { return nil }

type VerifyLoginResponse struct{}

func (VerifyLoginResponse) Message() string { return "Login successful" }

func (VerifyLoginResponse) Data() any { return nil }

type SignupPasswordRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignupPasswordResponse struct{}

func (SignupPasswordResponse) Message() string { return "Registration successful! Please login." }

func (SignupPasswordResponse) Data() any { return nil }

type LoginPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPasswordResponse struct{}

func (LoginPasswordResponse) Message() string { return "Login successful" }

func (LoginPasswordResponse) Data() any { return nil }
