package xed25519

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrRNGFailure is returned when the random source fails to provide
	// 32 bytes for a new secret key. The underlying error is preserved.
	ErrRNGFailure = ErrorKind("ErrRNGFailure")

	// ErrNotASquare is returned when a point has no corresponding Edwards
	// x-coordinate, i.e. the Montgomery u-coordinate lies on the twist or the
	// Edwards y-coordinate is not on the curve.
	ErrNotASquare = ErrorKind("ErrNotASquare")

	// ErrInvalidPoint is returned when the birational map is undefined for
	// the input, u = -1 for Montgomery to Edwards and y = 1 for Edwards to
	// Montgomery.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidEncoding is returned by strict decoding when an Edwards
	// y-coordinate is encoded as a value greater than or equal to 2^255-19.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidKeySize is returned when a key is not exactly 32 bytes.
	ErrInvalidKeySize = ErrorKind("ErrInvalidKeySize")

	// ErrInvalidSign is returned when the requested sign of the Edwards
	// x-coordinate is neither 0 nor 1.
	ErrInvalidSign = ErrorKind("ErrInvalidSign")

	// ErrLowOrderPoint is returned when a Diffie-Hellman computation
	// produces the all-zero shared secret.
	ErrLowOrderPoint = ErrorKind("ErrLowOrderPoint")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to key handling. It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
//
// Descriptions only ever mention public values.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// rngError wraps a random source failure so that both ErrRNGFailure and
// the original error can be matched with errors.Is.
type rngError struct {
	err error
}

func (e rngError) Error() string {
	return "xed25519: random source failed: " + e.err.Error()
}

func (e rngError) Unwrap() []error {
	return []error{ErrRNGFailure, e.err}
}

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
