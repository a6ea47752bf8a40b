// Package auth hashes and verifies user passwords with argon2id.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// maxPasswordLength bounds the input to the key derivation so an oversized
// password cannot tie up CPU and memory.
const maxPasswordLength = 1024

// Errors returned by Hash.
var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
)

// Params are the argon2id cost parameters used for new hashes. Existing
// hashes are always verified with the parameters encoded in them.
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams suit a small community server.
var DefaultParams = Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hasher hashes and checks passwords.
type Hasher struct {
	params Params
}

// NewHasher returns a Hasher producing hashes with p.
func NewHasher(p Params) *Hasher {
	return &Hasher{params: p}
}

// Hash returns the PHC-formatted argon2id hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt,
		h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches an argon2id hash. Malformed hashes
// simply fail to match.
func (h *Hasher) Verify(encoded, password string) bool {
	if len(password) > maxPasswordLength {
		return false
	}

	salt, key, p, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
	return subtle.ConstantTimeCompare(key, candidate) == 1
}

// Check compares a login password against a stored value. Values written by
// the legacy server are plain text; those are compared in constant time and
// reported with needsRehash set so the caller can replace them with a hash.
func (h *Hasher) Check(stored, password string) (ok, needsRehash bool) {
	if IsHash(stored) {
		return h.Verify(stored, password), false
	}
	if stored == "" {
		return false, false
	}
	ok = subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	return ok, ok
}

// IsHash reports whether s looks like an argon2id hash.
func IsHash(s string) bool {
	return strings.HasPrefix(s, "$argon2id$")
}

func decodeHash(encoded string) (salt, key []byte, p Params, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, nil, p, errors.New("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return nil, nil, p, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, p, fmt.Errorf("invalid version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, p, fmt.Errorf("incompatible version: %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return nil, nil, p, fmt.Errorf("invalid parameters: %w", err)
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, nil, p, fmt.Errorf("invalid salt encoding: %w", err)
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, nil, p, fmt.Errorf("invalid hash encoding: %w", err)
	}

	//nolint:gosec // key length comes from our own encoder
	p.KeyLength = uint32(len(key))
	return salt, key, p, nil
}
