package xed25519

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrRNGFailure, "ErrRNGFailure"},
		{ErrNotASquare, "ErrNotASquare"},
		{ErrInvalidPoint, "ErrInvalidPoint"},
		{ErrInvalidEncoding, "ErrInvalidEncoding"},
		{ErrInvalidKeySize, "ErrInvalidKeySize"},
		{ErrInvalidSign, "ErrInvalidSign"},
		{ErrLowOrderPoint, "ErrLowOrderPoint"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as
// being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidPoint == ErrInvalidPoint",
		err:       ErrInvalidPoint,
		target:    ErrInvalidPoint,
		wantMatch: true,
		wantAs:    ErrInvalidPoint,
	}, {
		name:      "Error.ErrInvalidPoint == ErrInvalidPoint",
		err:       makeError(ErrInvalidPoint, ""),
		target:    ErrInvalidPoint,
		wantMatch: true,
		wantAs:    ErrInvalidPoint,
	}, {
		name:      "Error.ErrInvalidPoint == Error.ErrInvalidPoint",
		err:       makeError(ErrInvalidPoint, ""),
		target:    makeError(ErrInvalidPoint, ""),
		wantMatch: true,
		wantAs:    ErrInvalidPoint,
	}, {
		name:      "ErrNotASquare != ErrInvalidPoint",
		err:       ErrNotASquare,
		target:    ErrInvalidPoint,
		wantMatch: false,
		wantAs:    ErrNotASquare,
	}, {
		name:      "Error.ErrNotASquare != ErrInvalidPoint",
		err:       makeError(ErrNotASquare, ""),
		target:    ErrInvalidPoint,
		wantMatch: false,
		wantAs:    ErrNotASquare,
	}, {
		name:      "rngError == ErrRNGFailure",
		err:       rngError{io.ErrUnexpectedEOF},
		target:    ErrRNGFailure,
		wantMatch: true,
		wantAs:    ErrRNGFailure,
	}, {
		name:      "rngError == io.ErrUnexpectedEOF",
		err:       rngError{io.ErrUnexpectedEOF},
		target:    io.ErrUnexpectedEOF,
		wantMatch: true,
		wantAs:    ErrRNGFailure,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error", test.name)
			continue
		}
		if !errors.Is(kind, test.wantAs) {
			t.Errorf("%s: unexpected unwrapped error -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
