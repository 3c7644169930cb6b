package commands

import (
	"bytes"
	"crypto/rand"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexanderYastrebov/xed25519"
)

const (
	alicePrivate = "dwdtCnMYpX08FsFyUbJmRd9ML4frwJkqsXf7pR25LCo="
	alicePublic  = "hSDwCYkwp1R0i33ctD73Wg2/Og0mOBr066SpjqqbTmo="
	aliceEdwards = "gSDymcN64cpkoXn2OKbG+v3paPHDNwXijEE8dXnZiE8="
	bobPublic    = "3p7bfXt9wbTTW2HC7OQ1Nz+DQ8hbeGdNrfx+FG+IK08="
)

// run executes the command line with args and returns its stdout and stderr.
func run(t *testing.T, rand io.Reader, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(rand)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenkey(t *testing.T) {
	stdout, _, err := run(t, bytes.NewReader(bytes.Repeat([]byte{0x01}, 32)), "genkey")
	require.NoError(t, err)
	assert.Equal(t, "AAEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAUE= pOCSkrZRwni5dyxWn1+puxPZBrRqtoyd+dwrRAn4ogk=\n", stdout)
}

func TestGenkeyRoundTrip(t *testing.T) {
	stdout, _, err := run(t, rand.Reader, "genkey")
	require.NoError(t, err)

	fields := strings.Fields(stdout)
	require.Len(t, fields, 2)

	pub, _, err := run(t, nil, "pubkey", fields[0])
	require.NoError(t, err)
	assert.Equal(t, fields[1]+"\n", pub)

	edwards, _, err := run(t, nil, "compress", fields[1])
	require.NoError(t, err)

	back, _, err := run(t, nil, "decompress", "--strict", strings.TrimSpace(edwards))
	require.NoError(t, err)
	assert.Equal(t, fields[1]+"\n", back)
}

func TestGenkeyRNGFailure(t *testing.T) {
	_, _, err := run(t, iotest.ErrReader(io.ErrClosedPipe), "genkey")
	require.Error(t, err)
	assert.ErrorIs(t, err, xed25519.ErrRNGFailure)
	assert.ErrorIs(t, errors.Cause(err), io.ErrClosedPipe)
}

func TestPubkey(t *testing.T) {
	stdout, _, err := run(t, nil, "pubkey", alicePrivate)
	require.NoError(t, err)
	assert.Equal(t, alicePublic+"\n", stdout)

	stdout, _, err = run(t, nil, "--hex", "pubkey", "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	require.NoError(t, err)
	assert.Equal(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a\n", stdout)
}

func TestPubkeyInvalidInput(t *testing.T) {
	_, _, err := run(t, nil, "pubkey", "not base64!")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "not base64!")

	_, _, err = run(t, nil, "pubkey", "AAAA")
	assert.ErrorIs(t, err, xed25519.ErrInvalidKeySize)
}

func TestCompress(t *testing.T) {
	stdout, _, err := run(t, nil, "compress", alicePublic)
	require.NoError(t, err)
	assert.Equal(t, aliceEdwards+"\n", stdout)

	stdout, _, err = run(t, nil, "compress", "--sign", "1", alicePublic)
	require.NoError(t, err)
	assert.Equal(t, "gSDymcN64cpkoXn2OKbG+v3paPHDNwXijEE8dXnZiM8=\n", stdout)

	_, _, err = run(t, nil, "compress", "--sign", "2", alicePublic)
	assert.ErrorIs(t, err, xed25519.ErrInvalidSign)

	_, _, err = run(t, nil, "compress", "7P///////////////////////////////////////38=")
	assert.ErrorIs(t, err, xed25519.ErrInvalidPoint)
}

func TestDecompress(t *testing.T) {
	stdout, _, err := run(t, nil, "decompress", aliceEdwards)
	require.NoError(t, err)
	assert.Equal(t, alicePublic+"\n", stdout)

	// p+1 reduces to y = 1 unless strict decoding rejects it first.
	_, _, err = run(t, nil, "decompress", "7v///////////////////////////////////////38=")
	assert.ErrorIs(t, err, xed25519.ErrInvalidPoint)

	_, _, err = run(t, nil, "decompress", "--strict", "7v///////////////////////////////////////38=")
	assert.ErrorIs(t, err, xed25519.ErrInvalidEncoding)
}

func TestDH(t *testing.T) {
	stdout, _, err := run(t, nil, "dh", alicePrivate, bobPublic)
	require.NoError(t, err)
	assert.Equal(t, "Sl2dW6TOLeFyjjv0gDUPJeB+IclH0Z4zdvCbPB4WF0I=\n", stdout)

	_, _, err = run(t, nil, "dh", alicePrivate, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=")
	assert.ErrorIs(t, err, xed25519.ErrLowOrderPoint)
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, nil, "--log-level", "debug", "pubkey", alicePrivate)
	require.NoError(t, err)
	assert.Contains(t, stderr, "derived public key")
	assert.Contains(t, stderr, alicePublic)
	assert.NotContains(t, stderr, alicePrivate)

	_, _, err = run(t, nil, "--log-level", "chatty", "pubkey", alicePrivate)
	require.Error(t, err)
}
