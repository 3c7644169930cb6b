// Package xed25519 implements [curve25519] key pairs and their conversion to
// and from [edwards25519] public keys.
//
// A Montgomery u-coordinate public key maps to an Edwards compressed point
// through the birational map
//
//	y = (u - 1) / (u + 1)
//	u = (1 + y) / (1 - y)
//
// The map loses the sign of the Edwards x-coordinate, so [CompressPublic]
// always emits the non-negative x branch (sign bit 0), matching libsodium's
// crypto_sign_ed25519_pk_to_curve25519 round trip. [DecompressPublic] ignores
// the sign bit.
//
// [DiffieHellman] rejects low-order peer keys with [ErrLowOrderPoint] rather
// than returning the all-zero shared secret as x25519-dalek does; use
// [ScalarMult] for the unchecked result.
//
// All functions are pure and safe for concurrent use. Field arithmetic is
// constant time with respect to secret values.
//
// [curve25519]: https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// [edwards25519]: https://www.rfc-editor.org/rfc/rfc8032.html#section-5.1
package xed25519

import (
	"crypto/subtle"
	"io"

	"filippo.io/edwards25519"
)

const (
	// SecretKeySize is the size of a secret scalar in bytes.
	SecretKeySize = 32
	// PublicKeySize is the size of a Montgomery or Edwards public key in bytes.
	PublicKeySize = 32
	// SharedSecretSize is the size of a Diffie-Hellman shared secret in bytes.
	SharedSecretSize = 32
)

// SecretKey is a curve25519 secret scalar.
type SecretKey [SecretKeySize]byte

// PublicKey is a curve25519 public key, the little-endian Montgomery
// u-coordinate.
type PublicKey [PublicKeySize]byte

// EdwardsPublicKey is an edwards25519 compressed point, the little-endian
// y-coordinate with the sign of x in the most significant bit.
type EdwardsPublicKey [PublicKeySize]byte

// NewSecretKey returns a copy of b as a SecretKey.
func NewSecretKey(b []byte) (SecretKey, error) {
	var k SecretKey
	if len(b) != SecretKeySize {
		return k, makeError(ErrInvalidKeySize, "xed25519: invalid secret key size")
	}
	copy(k[:], b)
	return k, nil
}

// NewPublicKey returns a copy of b as a PublicKey.
func NewPublicKey(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != PublicKeySize {
		return k, makeError(ErrInvalidKeySize, "xed25519: invalid public key size")
	}
	copy(k[:], b)
	return k, nil
}

// NewEdwardsPublicKey returns a copy of b as an EdwardsPublicKey.
func NewEdwardsPublicKey(b []byte) (EdwardsPublicKey, error) {
	var k EdwardsPublicKey
	if len(b) != PublicKeySize {
		return k, makeError(ErrInvalidKeySize, "xed25519: invalid edwards public key size")
	}
	copy(k[:], b)
	return k, nil
}

// Clamp returns k with the low three bits and bit 255 cleared and bit 254 set.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-5
func (k SecretKey) Clamp() SecretKey {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
	return k
}

// Equal reports whether k and x are the same secret in constant time.
func (k SecretKey) Equal(x SecretKey) bool {
	return subtle.ConstantTimeCompare(k[:], x[:]) == 1
}

// Bytes returns a copy of k.
func (k SecretKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// String does not reveal the secret.
func (k SecretKey) String() string {
	return "xed25519.SecretKey(redacted)"
}

// Public returns the public key corresponding to k, see [DerivePublic].
func (k SecretKey) Public() PublicKey {
	return DerivePublic(k)
}

// Equal reports whether k and x encode the same bytes.
func (k PublicKey) Equal(x PublicKey) bool {
	return k == x
}

// Bytes returns a copy of k.
func (k PublicKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// Equal reports whether k and x encode the same bytes.
func (k EdwardsPublicKey) Equal(x EdwardsPublicKey) bool {
	return k == x
}

// Bytes returns a copy of k.
func (k EdwardsPublicKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// GenerateKey reads a new secret from rand and returns the clamped secret and
// its public key.
//
// A failing rand is never retried, the returned error matches both
// [ErrRNGFailure] and the error returned by rand.
func GenerateKey(rand io.Reader) (SecretKey, PublicKey, error) {
	var k SecretKey
	if _, err := io.ReadFull(rand, k[:]); err != nil {
		return SecretKey{}, PublicKey{}, rngError{err}
	}
	k = k.Clamp()
	return k, DerivePublic(k), nil
}

// DerivePublic returns the curve25519 public key of the secret k, clamping k
// first exactly like [GenerateKey] does.
//
// It uses the edwards25519 fixed-base table and maps the result to the
// Montgomery u-coordinate, which gives the same result as [ScalarMult] with
// [Basepoint].
func DerivePublic(k SecretKey) PublicKey {
	clamped := k.Clamp()
	s, err := edwards25519.NewScalar().SetBytesWithClamping(clamped[:])
	if err != nil {
		panic(err) // only fails on wrong length
	}

	var pub PublicKey
	copy(pub[:], new(edwards25519.Point).ScalarBaseMult(s).BytesMontgomery())
	return pub
}
