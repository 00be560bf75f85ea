package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt implements Hash using the bcrypt algorithm.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher. A cost outside bcrypt's valid range
// falls back to the library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of the plain value.
func (b *Bcrypt) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Verify reports whether plain matches the bcrypt hash.
func (b *Bcrypt) Verify(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
