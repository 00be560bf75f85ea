package uid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrStableNodeIdentityUnavailable indicates no stable node identity is available.
var ErrStableNodeIdentityUnavailable = errors.New("uid: cannot determine stable node identity (machine-id/hostname unavailable)")

// ObjectIDGenerator generates 32-byte distributed-safe IDs (hex output).
// Used for session tokens, where 256 bits of entropy matter more than
// sortability.
type ObjectIDGenerator struct {
	nodeID  [6]byte
	pid     uint16
	counter uint32
}

// NewObjectIDGenerator creates a generator with stable node identity.
func NewObjectIDGenerator() (*ObjectIDGenerator, error) {
	g := &ObjectIDGenerator{pid: uint16(os.Getpid())}

	src, err := stableNodeIdentity()
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(src))
	copy(g.nodeID[:], sum[:6])

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, err
	}
	g.counter = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	return g, nil
}

func stableNodeIdentity() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}

	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}

	return "", ErrStableNodeIdentityUnavailable
}

// Generate returns a 64-char hex string representing 32 bytes (URL-safe).
func (g *ObjectIDGenerator) Generate() string {
	var raw [32]byte

	// 6-byte millisecond timestamp, big-endian
	ts := uint64(time.Now().UnixMilli())
	for i := range 6 {
		raw[i] = byte(ts >> (40 - 8*i))
	}

	copy(raw[6:12], g.nodeID[:])

	raw[12] = byte(g.pid >> 8)
	raw[13] = byte(g.pid)

	c := atomic.AddUint32(&g.counter, 1)
	raw[14] = byte(c >> 24)
	raw[15] = byte(c >> 16)
	raw[16] = byte(c >> 8)
	raw[17] = byte(c)

	// 14 random bytes; deterministic fallback keeps IDs unique per counter.
	if _, err := rand.Read(raw[18:]); err != nil {
		sum := sha256.Sum256(raw[:18])
		copy(raw[18:], sum[:14])
	}

	var hexBuf [64]byte
	hex.Encode(hexBuf[:], raw[:])
	return string(hexBuf[:])
}
