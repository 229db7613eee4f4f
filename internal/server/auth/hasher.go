// Package auth implements the credential-protection primitives of the
// server: one-way password hashing (Argon2id) and signed session tokens
// (JWT, HS256).
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dkravchenko/identity-service/internal/common"
)

// argon2 version baked into the encoded hash string (0x13).
const argon2Version = 19

// Argon2idParams defines the cost parameters for password hashing.
type Argon2idParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	SaltLen   uint32
	KeyLen    uint32
}

// DefaultArgon2idParams returns the baseline cost parameters. Time, memory
// and parallelism are usually overridden from config; salt and key lengths
// are fixed.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
		SaltLen:   16,
		KeyLen:    32,
	}
}

// Hasher derives and verifies Argon2id password hashes in the self-describing
// PHC format:
//
//	$argon2id$v=19$m=<mem>,t=<time>,p=<par>$<salt b64>$<key b64>
//
// Verification recovers the parameters and salt from the stored string, so
// hashes remain verifiable after the configured costs change.
type Hasher struct {
	params Argon2idParams
}

func NewHasher(params Argon2idParams) *Hasher {
	if params.SaltLen == 0 {
		params.SaltLen = 16
	}
	if params.KeyLen == 0 {
		params.KeyLen = 32
	}
	if params.Time == 0 {
		params.Time = 1
	}
	if params.Threads == 0 {
		params.Threads = 1
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = 64 * 1024
	}
	return &Hasher{params: params}
}

// Hash derives an Argon2id hash of plaintext with a fresh random salt and
// returns the PHC-encoded string. Two calls with the same plaintext produce
// different strings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := common.GenerateRandByteArray(int(h.params.SaltLen))

	key := argon2.IDKey([]byte(plaintext), salt,
		h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLen)

	b64 := base64.RawStdEncoding
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Version, h.params.MemoryKiB, h.params.Time, h.params.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key))

	return encoded, nil
}

// Verify recomputes the hash of plaintext using the parameters and salt
// embedded in stored and compares digests in constant time.
//
// A mismatch returns (false, nil). An unparseable stored hash returns
// (false, common.ErrHashingFailed): callers must treat that as an
// infrastructure failure, not as a wrong password.
func (h *Hasher) Verify(plaintext, stored string) (bool, error) {
	params, salt, expected, err := decodeHash(stored)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(plaintext), salt,
		params.Time, params.MemoryKiB, params.Threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// decodeHash parses a PHC-encoded Argon2id string into its parameters, salt
// and digest. Every malformation maps to common.ErrHashingFailed.
func decodeHash(encoded string) (Argon2idParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: not an argon2id hash", common.ErrHashingFailed)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2Version {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: unsupported argon2 version", common.ErrHashingFailed)
	}

	var mem, time, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &time, &par); err != nil {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: bad cost parameters", common.ErrHashingFailed)
	}
	if mem == 0 || time == 0 || par == 0 || par > 255 {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: bad cost parameters", common.ErrHashingFailed)
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: bad salt", common.ErrHashingFailed)
	}
	digest, err := b64.DecodeString(parts[5])
	if err != nil || len(digest) < 16 {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: bad digest", common.ErrHashingFailed)
	}

	params := Argon2idParams{
		Time:      time,
		MemoryKiB: mem,
		Threads:   uint8(par),
		SaltLen:   uint32(len(salt)),
		KeyLen:    uint32(len(digest)),
	}

	return params, salt, digest, nil
}
