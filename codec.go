package xed25519

import (
	"encoding/binary"

	"github.com/AlexanderYastrebov/xed25519/field"
)

// DecodeOption configures decoding of an [EdwardsPublicKey].
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict bool
}

// Strict rejects Edwards y-coordinates encoded as values of 2^255-19 or
// more with [ErrInvalidEncoding] instead of reducing them modulo 2^255-19.
func Strict() DecodeOption {
	return func(c *decodeConfig) {
		c.strict = true
	}
}

// decodeMontgomery returns the u-coordinate encoded in u.
// Consistent with RFC 7748, the most significant bit is ignored and
// non-canonical values are reduced.
func decodeMontgomery(u *PublicKey) *field.Element {
	return fieldElementFromBytes(u[:])
}

func encodeMontgomery(u *field.Element) PublicKey {
	var pub PublicKey
	u.FillBytes(pub[:])
	return pub
}

// decodeEdwards splits p into the y-coordinate and the sign bit of x.
func decodeEdwards(p *EdwardsPublicKey, strict bool) (*field.Element, int, error) {
	sign := int(p[31] >> 7)

	yb := *p
	yb[31] &= 0x7f

	if strict {
		y, err := new(field.Element).SetCanonicalBytes(yb[:])
		if err != nil {
			return nil, 0, makeError(ErrInvalidEncoding, "xed25519: non-canonical edwards y-coordinate")
		}
		return y, sign, nil
	}
	return fieldElementFromBytes(yb[:]), sign, nil
}

// encodeEdwards packs y and the sign bit of x into a compressed point.
func encodeEdwards(y *field.Element, sign int) EdwardsPublicKey {
	var p EdwardsPublicKey
	y.FillBytes(p[:])
	p[31] |= byte(sign&1) << 7
	return p
}

func fieldElementFromUint64(n uint64) *field.Element {
	var nb [32]byte
	binary.LittleEndian.PutUint64(nb[:], n)
	return fieldElementFromBytes(nb[:])
}

func fieldElementFromBytes(x []byte) *field.Element {
	fe, err := new(field.Element).SetBytes(x)
	if err != nil {
		panic(err)
	}
	return fe
}
