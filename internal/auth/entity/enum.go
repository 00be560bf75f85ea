package entity

import (
	"crypto/subtle"
	"time"
)

// CodeVerdict is the outcome of checking candidate digits against a code.
type CodeVerdict int

const (
	// VerdictOK means the candidate matched a live code.
	VerdictOK CodeVerdict = iota
	// VerdictConsumed means the code was already used.
	VerdictConsumed
	// VerdictExpired means the code's lifetime has passed.
	VerdictExpired
	// VerdictMismatch means the digits did not match.
	VerdictMismatch
)

// String returns the string representation of the verdict.
func (v CodeVerdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictConsumed:
		return "consumed"
	case VerdictExpired:
		return "expired"
	case VerdictMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Check evaluates candidate digits against the code at the given instant.
// Consumed and expiry states are decided before the digits are ever
// compared; the comparison itself is constant time. A code is live strictly
// before its expiry instant.
func (c OneTimeCode) Check(now time.Time, candidate string) CodeVerdict {
	if c.Consumed {
		return VerdictConsumed
	}
	if !now.Before(c.ExpiresAt) {
		return VerdictExpired
	}
	if subtle.ConstantTimeCompare([]byte(c.Digits), []byte(candidate)) != 1 {
		return VerdictMismatch
	}
	return VerdictOK
}
