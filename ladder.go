package xed25519

import (
	"crypto/subtle"

	"github.com/AlexanderYastrebov/xed25519/field"
)

// Basepoint is the canonical curve25519 generator, u = 9.
var Basepoint = PublicKey{9}

// (A - 2) / 4 for A = 486662
const a24 = 121665

// ScalarMult returns the u-coordinate of k*u, where k is clamped first and
// the most significant bit of u is ignored.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-5
func ScalarMult(k SecretKey, u PublicKey) [SharedSecretSize]byte {
	var out [SharedSecretSize]byte
	x := x25519(k.Clamp(), decodeMontgomery(&u))
	x.FillBytes(out[:])
	return out
}

// DiffieHellman returns the shared secret between the secret k and the peer
// public key.
//
// It returns [ErrLowOrderPoint] if the peer key has low order and the shared
// secret would be all zeros. Implementations such as x25519-dalek return the
// all-zero secret in this case; callers needing that value can use
// [ScalarMult], which never fails.
func DiffieHellman(k SecretKey, peer PublicKey) ([SharedSecretSize]byte, error) {
	out := ScalarMult(k, peer)

	var zero [SharedSecretSize]byte
	if subtle.ConstantTimeCompare(out[:], zero[:]) == 1 {
		return zero, makeError(ErrLowOrderPoint, "xed25519: low order peer public key")
	}
	return out, nil
}

// x25519 runs the Montgomery ladder with the clamped scalar k.
// Swaps are driven by the scalar bits through masks, never by branches.
func x25519(k SecretKey, u *field.Element) *field.Element {
	var x1, x2, z2, x3, z3 field.Element
	var a, aa, b, bb, e, c, d, da, cb field.Element

	x1.Set(u)
	x2.One()
	z2.Zero()
	x3.Set(u)
	z3.One()

	swap := 0
	for pos := 254; pos >= 0; pos-- {
		bit := int(k[pos/8]>>(pos&7)) & 1
		swap ^= bit
		x2.Swap(&x3, swap)
		z2.Swap(&z3, swap)
		swap = bit

		a.Add(&x2, &z2)
		aa.Square(&a)
		b.Subtract(&x2, &z2)
		bb.Square(&b)
		e.Subtract(&aa, &bb)
		c.Add(&x3, &z3)
		d.Subtract(&x3, &z3)
		da.Multiply(&d, &a)
		cb.Multiply(&c, &b)

		x3.Add(&da, &cb)
		x3.Square(&x3)
		z3.Subtract(&da, &cb)
		z3.Square(&z3)
		z3.Multiply(&z3, &x1)
		x2.Multiply(&aa, &bb)
		z2.Mult32(&e, a24)
		z2.Add(&z2, &aa)
		z2.Multiply(&z2, &e)
	}
	x2.Swap(&x3, swap)
	z2.Swap(&z3, swap)

	z2.Invert(&z2)
	return x2.Multiply(&x2, &z2)
}
