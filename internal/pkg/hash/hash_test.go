package hash

import "testing"

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(4)

	hashed, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("hash must not equal the plain value")
	}

	if !h.Verify(hashed, "secret123") {
		t.Fatal("verify must accept the original value")
	}
	if h.Verify(hashed, "secret124") {
		t.Fatal("verify must reject a different value")
	}
	if h.Verify("", "secret123") {
		t.Fatal("verify must reject an empty stored hash")
	}
}

func TestHMACSHA256(t *testing.T) {
	h := NewHMACSHA256("key-1")

	a, err := h.Hash("token")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := h.Hash("token")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a != b {
		t.Fatal("hmac must be deterministic for the same key and input")
	}

	other, err := NewHMACSHA256("key-2").Hash("token")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == other {
		t.Fatal("different keys must produce different hashes")
	}

	if !h.Verify(a, "token") {
		t.Fatal("verify must accept the original value")
	}
	if h.Verify(a, "other") {
		t.Fatal("verify must reject a different value")
	}
}
