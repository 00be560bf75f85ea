package otp

import "testing"

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric()

	for range 50 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != Digits {
			t.Fatalf("code %q has length %d, want %d", code, len(code), Digits)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains a non-digit", code)
			}
		}
	}
}
