package entity

import "time"

// Account is a registered user of the service. An account created through
// the one-time-code flow carries an empty PasswordHash and can never
// authenticate by password.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Passwordless reports whether the account was created without a password.
func (a Account) Passwordless() bool {
	return a.PasswordHash == ""
}

// OneTimeCode is a single issued verification code. Codes accumulate per
// email; only the most recently issued one is reachable through
// verification.
type OneTimeCode struct {
	ID        int64
	Email     string
	Digits    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Consumed  bool
}
