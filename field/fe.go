package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"math/bits"
)

// Element represents an element of the field GF(2^255-19).
//
// All arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^64 + t.l2*2^128 + t.l3*2^192
	// and is always less than 2^255-19.
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
}

const maskLow63Bits = (1 << 63) - 1

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through 2^255-1)
// are accepted and reduced.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}

	l0 := binary.LittleEndian.Uint64(x[0*8:])
	l1 := binary.LittleEndian.Uint64(x[1*8:])
	l2 := binary.LittleEndian.Uint64(x[2*8:])
	l3 := binary.LittleEndian.Uint64(x[3*8:]) & maskLow63Bits

	return v.reduce(l0, l1, l2, l3), nil
}

// SetCanonicalBytes sets v to x, where x is the canonical 32-byte
// little-endian encoding of a field element. It returns an error and leaves
// the receiver unchanged if x is not of the right length, has the most
// significant bit set, or encodes a value of 2^255-19 or more.
func (v *Element) SetCanonicalBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}
	if x[31]&0x80 != 0 {
		return nil, errors.New("field: non-canonical field element encoding")
	}

	var t Element
	if _, err := t.SetBytes(x); err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(t.Bytes(), x) != 1 {
		return nil, errors.New("field: non-canonical field element encoding")
	}

	*v = t
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [32]byte
	return v.bytes(&out)
}

// FillBytes sets buf the canonical 32-byte little-endian encoding of v, and returns buf.
// If the value of v doesn't fit in buf, FillBytes will panic.
func (v *Element) FillBytes(buf []byte) []byte {
	binary.LittleEndian.PutUint64(buf[0*8:], v.l0)
	binary.LittleEndian.PutUint64(buf[1*8:], v.l1)
	binary.LittleEndian.PutUint64(buf[2*8:], v.l2)
	binary.LittleEndian.PutUint64(buf[3*8:], v.l3)

	return buf[:32]
}

func (v *Element) bytes(out *[32]byte) []byte {
	return v.FillBytes(out[:])
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	su, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(su, sv)
}

// IsZero returns 1 if v is zero, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// mask64Bits returns 0xffffffffffffffff if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := mask64Bits(cond)
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
}

var feZero = &Element{0, 0, 0, 0}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{1, 0, 0, 0}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// reduce sets v to the 256-bit value l0 + l1*2^64 + l2*2^128 + l3*2^192
// reduced modulo p, which requires the value to be less than 2*p.
func (v *Element) reduce(l0, l1, l2, l3 uint64) *Element {
	// t = l + 19 has bit 255 set iff l >= p, in which case t - 2^255 = l - p.
	t0, c := bits.Add64(l0, 19, 0)
	t1, c := bits.Add64(l1, 0, c)
	t2, c := bits.Add64(l2, 0, c)
	t3, _ := bits.Add64(l3, 0, c)

	m := -(t3 >> 63)
	t3 &= maskLow63Bits

	v.l0 = (m & t0) | (^m & l0)
	v.l1 = (m & t1) | (^m & l1)
	v.l2 = (m & t2) | (^m & l2)
	v.l3 = (m & t3) | (^m & l3)
	return v
}

// Add sets v = x + y, and returns v.
func (v *Element) Add(x, y *Element) *Element {
	// x, y < p < 2^255 so the sum does not overflow 256 bits.
	l0, c := bits.Add64(x.l0, y.l0, 0)
	l1, c := bits.Add64(x.l1, y.l1, c)
	l2, c := bits.Add64(x.l2, y.l2, c)
	l3, _ := bits.Add64(x.l3, y.l3, c)

	return v.reduce(l0, l1, l2, l3)
}

// p = 2^255 - 19 as four 64-bit limbs.
const (
	p0 = 1<<64 - 19
	p1 = 1<<64 - 1
	p2 = 1<<64 - 1
	p3 = 1<<63 - 1
)

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	l0, bw := bits.Sub64(a.l0, b.l0, 0)
	l1, bw := bits.Sub64(a.l1, b.l1, bw)
	l2, bw := bits.Sub64(a.l2, b.l2, bw)
	l3, bw := bits.Sub64(a.l3, b.l3, bw)

	// Add p back if the subtraction wrapped around.
	m := -bw
	var c uint64
	v.l0, c = bits.Add64(l0, m&p0, 0)
	v.l1, c = bits.Add64(l1, m&p1, c)
	v.l2, c = bits.Add64(l2, m&p2, c)
	v.l3, _ = bits.Add64(l3, m&p3, c)
	return v
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	a := [4]uint64{x.l0, x.l1, x.l2, x.l3}
	b := [4]uint64{y.l0, y.l1, y.l2, y.l3}

	// Schoolbook 256x256 -> 512 bit product.
	var r [8]uint64
	for i := range 4 {
		var carry uint64
		for j := range 4 {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			r[i+j] = lo
			carry = hi
		}
		r[i+4] = carry
	}

	return v.reduceWide(&r)
}

// reduceWide sets v to the 512-bit value r reduced modulo p.
func (v *Element) reduceWide(r *[8]uint64) *Element {
	// 2^256 = 38 mod p
	var l [5]uint64
	var carry uint64
	for i := range 4 {
		hi, lo := bits.Mul64(r[i+4], 38)
		var c uint64
		lo, c = bits.Add64(lo, r[i], 0)
		hi += c
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		l[i] = lo
		carry = hi
	}
	l[4] = carry

	// 2^255 = 19 mod p, fold everything from bit 255 up.
	top := l[4]<<1 | l[3]>>63
	l[3] &= maskLow63Bits

	var c uint64
	l[0], c = bits.Add64(l[0], top*19, 0)
	l[1], c = bits.Add64(l[1], 0, c)
	l[2], c = bits.Add64(l[2], 0, c)
	l[3], _ = bits.Add64(l[3], 0, c)

	return v.reduce(l[0], l[1], l[2], l[3])
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	return v.Multiply(x, x)
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// IsNegative returns 1 if v is negative, and 0 otherwise.
func (v *Element) IsNegative() int {
	return int(v.l0 & 1)
}

// Absolute sets v to |u|, and returns v.
func (v *Element) Absolute(u *Element) *Element {
	return v.Select(new(Element).Negate(u), u, u.IsNegative())
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Inversion is implemented as exponentiation with exponent p - 2. It uses the
	// same sequence of 254 squarings and 11 multiplications as [Curve25519].
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for range 4 {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for range 9 {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for range 19 {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for range 9 {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for range 49 {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for range 99 {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for range 49 {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	t.Square(&t) // 2^252 - 2^2
	t.Square(&t) // 2^253 - 2^3
	t.Square(&t) // 2^254 - 2^4
	t.Square(&t) // 2^255 - 2^5

	return v.Multiply(&t, &z11) // 2^255 - 21
}

// Mult32 sets v = x * y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	return v.Multiply(x, &Element{uint64(y), 0, 0, 0})
}

// Pow22523 set v = x^((p-5)/8), and returns v. (p-5)/8 is 2^252-3.
func (v *Element) Pow22523(x *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(x)             // x^2
	t1.Square(&t0)           // x^4
	t1.Square(&t1)           // x^8
	t1.Multiply(x, &t1)      // x^9
	t0.Multiply(&t0, &t1)    // x^11
	t0.Square(&t0)           // x^22
	t0.Multiply(&t1, &t0)    // x^31
	t1.Square(&t0)           // x^62
	for i := 1; i < 5; i++ { // x^992
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0)     // x^1023 -> 1023 = 2^10 - 1
	t1.Square(&t0)            // 2^11 - 2
	for i := 1; i < 10; i++ { // 2^20 - 2^10
		t1.Square(&t1)
	}
	t1.Multiply(&t1, &t0)     // 2^20 - 1
	t2.Square(&t1)            // 2^21 - 2
	for i := 1; i < 20; i++ { // 2^40 - 2^20
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)     // 2^40 - 1
	t1.Square(&t1)            // 2^41 - 2
	for i := 1; i < 10; i++ { // 2^50 - 2^10
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0)     // 2^50 - 1
	t1.Square(&t0)            // 2^51 - 2
	for i := 1; i < 50; i++ { // 2^100 - 2^50
		t1.Square(&t1)
	}
	t1.Multiply(&t1, &t0)      // 2^100 - 1
	t2.Square(&t1)             // 2^101 - 2
	for i := 1; i < 100; i++ { // 2^200 - 2^100
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)     // 2^200 - 1
	t1.Square(&t1)            // 2^201 - 2
	for i := 1; i < 50; i++ { // 2^250 - 2^50
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0)     // 2^250 - 1
	t0.Square(&t0)            // 2^251 - 2
	t0.Square(&t0)            // 2^252 - 4
	return v.Multiply(&t0, x) // 2^252 - 3 -> x^(2^252-3)
}

// sqrtM1 is 2^((p-1)/4), which squared is equal to -1 by Euler's Criterion.
var sqrtM1 = &Element{
	l0: 14190309331451158704,
	l1: 3405592160176694392,
	l2: 3120150775007532967,
	l3: 3135389899092516619,
}

// Sqrt sets r to the non-negative square root of a.
//
// Since p = 5 mod 8, the candidate a^((p+3)/8) is a root of either a or -a.
// In the second case it is multiplied by sqrt(-1). Both candidates are
// always computed and checked.
//
// If a is square, Sqrt returns r and 1. If a is not square, Sqrt sets r to
// zero and returns r and 0.
func (r *Element) Sqrt(a *Element) (R *Element, wasSquare int) {
	var t Element

	// (p+3)/8 = (p-5)/8 + 1
	r0 := new(Element).Multiply(a, t.Pow22523(a))
	r1 := new(Element).Multiply(r0, sqrtM1)

	first := t.Square(r0).Equal(a)
	second := t.Square(r1).Equal(a)

	rr := new(Element).Select(r0, r1, first)
	wasSquare = first | second
	rr.Select(rr, feZero, wasSquare)

	r.Absolute(rr) // Choose the nonnegative square root.
	return r, wasSquare
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to Section 4.3 of draft-irtf-cfrg-ristretto255-decaf448-00,
// and returns r and 0.
func (r *Element) SqrtRatio(u, v *Element) (R *Element, wasSquare int) {
	t0 := new(Element)

	// r = (u * v3) * (u * v7)^((p-5)/8)
	v2 := new(Element).Square(v)
	uv3 := new(Element).Multiply(u, t0.Multiply(v2, v))
	uv7 := new(Element).Multiply(uv3, t0.Square(v2))
	rr := new(Element).Multiply(uv3, t0.Pow22523(uv7))

	check := new(Element).Multiply(v, t0.Square(rr)) // check = v * r^2

	uNeg := new(Element).Negate(u)
	correctSignSqrt := check.Equal(u)
	flippedSignSqrt := check.Equal(uNeg)
	flippedSignSqrtI := check.Equal(t0.Multiply(uNeg, sqrtM1))

	rPrime := new(Element).Multiply(rr, sqrtM1) // r_prime = SQRT_M1 * r
	// r = CT_SELECT(r_prime IF flipped_sign_sqrt | flipped_sign_sqrt_i ELSE r)
	rr.Select(rPrime, rr, flippedSignSqrt|flippedSignSqrtI)

	r.Absolute(rr) // Choose the nonnegative square root.
	return r, correctSignSqrt | flippedSignSqrt
}
