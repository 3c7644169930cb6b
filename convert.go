package xed25519

import (
	"github.com/AlexanderYastrebov/xed25519/field"
)

// Constant 1
var _1 = new(field.Element).One()

// Constant -1
var _minus1 = new(field.Element).Negate(_1)

// Edwards "edwards25519" -x^2 + y^2 = 1 + d*x^2*y^2 parameter d = -121665/121666.
//
// https://www.rfc-editor.org/rfc/rfc8032.html#section-5.1
var _d = func() *field.Element {
	var t field.Element
	t.Invert(fieldElementFromUint64(121666))
	t.Multiply(&t, fieldElementFromUint64(121665))
	return t.Negate(&t)
}()

// CompressPublic converts the curve25519 public key u to the edwards25519
// public key with the non-negative x-coordinate, see [ToEdwards].
func CompressPublic(u PublicKey) (EdwardsPublicKey, error) {
	return ToEdwards(u, 0)
}

// ToEdwards converts the curve25519 public key u to an edwards25519 public
// key whose x-coordinate has the given sign, 0 for non-negative and 1 for
// negative. The sign of x = 0 is always 0.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// (x, y) = (sqrt(-486664)*u/v, (u-1)/(u+1))
//
// It returns [ErrInvalidSign] if sign is neither 0 nor 1, [ErrInvalidPoint]
// for u = -1 and [ErrNotASquare] if u is not the u-coordinate of a point on
// curve25519.
func ToEdwards(u PublicKey, sign int) (EdwardsPublicKey, error) {
	if sign != 0 && sign != 1 {
		return EdwardsPublicKey{}, makeError(ErrInvalidSign, "xed25519: sign must be 0 or 1")
	}

	uf := decodeMontgomery(&u)

	if uf.Equal(_minus1) == 1 {
		return EdwardsPublicKey{}, makeError(ErrInvalidPoint, "xed25519: u = -1 has no edwards25519 equivalent")
	}

	var y, t field.Element
	t.Add(uf, _1)
	t.Invert(&t)
	y.Subtract(uf, _1)
	y.Multiply(&y, &t) // y = (u-1)/(u+1)

	x, wasSquare := edwardsX(&y)
	if wasSquare == 0 {
		return EdwardsPublicKey{}, makeError(ErrNotASquare, "xed25519: u is not on curve25519")
	}

	return encodeEdwards(&y, sign&(1-x.IsZero())), nil
}

// DecompressPublic converts the edwards25519 public key p to the curve25519
// public key. The sign bit of p does not affect the result.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// u = (1+y)/(1-y)
//
// It returns [ErrInvalidPoint] for y = 1, [ErrNotASquare] if p is not on
// edwards25519 and, with [Strict], [ErrInvalidEncoding] for a non-canonical y.
func DecompressPublic(p EdwardsPublicKey, opts ...DecodeOption) (PublicKey, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	y, _, err := decodeEdwards(&p, cfg.strict)
	if err != nil {
		return PublicKey{}, err
	}

	if y.Equal(_1) == 1 {
		return PublicKey{}, makeError(ErrInvalidPoint, "xed25519: y = 1 has no curve25519 equivalent")
	}

	if _, wasSquare := edwardsX(y); wasSquare == 0 {
		return PublicKey{}, makeError(ErrNotASquare, "xed25519: point is not on edwards25519")
	}

	var u, t field.Element
	t.Subtract(_1, y)
	t.Invert(&t)
	u.Add(_1, y)
	u.Multiply(&u, &t) // u = (1+y)/(1-y)

	return encodeMontgomery(&u), nil
}

// edwardsX returns the non-negative x-coordinate of the edwards25519 point
// with the given y and 1, or zero and 0 if there is no such point.
//
// x^2 = (y^2 - 1) / (d*y^2 + 1)
func edwardsX(y *field.Element) (*field.Element, int) {
	var y2, num, den field.Element

	y2.Square(y)
	num.Subtract(&y2, _1)
	den.Multiply(_d, &y2)
	den.Add(&den, _1) // never zero since -1/d is not square

	return new(field.Element).SqrtRatio(&num, &den)
}
