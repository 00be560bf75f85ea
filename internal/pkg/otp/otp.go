// Package otp generates short numeric one-time codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits is the length of generated codes.
const Digits = 6

// Generator produces one-time codes.
type Generator interface {
	// Generate returns a fresh numeric code.
	Generate() (string, error)
}

// Numeric generates uniformly random numeric codes using crypto/rand.
type Numeric struct {
	max *big.Int
}

// NewNumeric creates a Numeric generator producing Digits-long codes.
func NewNumeric() *Numeric {
	max := big.NewInt(1)
	for range Digits {
		max.Mul(max, big.NewInt(10))
	}

	return &Numeric{max: max}
}

// Generate returns a zero-padded code in [000000, 999999].
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, n.max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", Digits, v), nil
}
