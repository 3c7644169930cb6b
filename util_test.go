package xed25519

import (
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

// quickCheckConfig returns a quick.Config that scales the max count by the
// given factor if the -short flag is not set.
func quickCheckConfig(slowScale int) *quick.Config {
	cfg := new(quick.Config)
	if !testing.Short() {
		cfg.MaxCountScale = float64(slowScale)
	}
	return cfg
}

func (SecretKey) Generate(rand *mathrand.Rand, size int) reflect.Value {
	var k SecretKey
	rand.Read(k[:])
	return reflect.ValueOf(k)
}

func randomSecretKey() SecretKey {
	var k SecretKey
	if _, err := rand.Read(k[:]); err != nil {
		panic(err)
	}
	return k
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func secretKeyFromHex(s string) SecretKey {
	k, err := NewSecretKey(decodeHex(s))
	if err != nil {
		panic(err)
	}
	return k
}

func publicKeyFromHex(s string) PublicKey {
	k, err := NewPublicKey(decodeHex(s))
	if err != nil {
		panic(err)
	}
	return k
}

func edwardsPublicKeyFromHex(s string) EdwardsPublicKey {
	k, err := NewEdwardsPublicKey(decodeHex(s))
	if err != nil {
		panic(err)
	}
	return k
}

// RFC 7748 section 6.1 key pairs.
var (
	alicePrivate = secretKeyFromHex("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	alicePublic  = publicKeyFromHex("8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")
	bobPrivate   = secretKeyFromHex("5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")
	bobPublic    = publicKeyFromHex("de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f")
)
