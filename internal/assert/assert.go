// Package assert provides test assertion helpers.
package assert

import (
	"errors"
	"reflect"
	"testing"
)

func True(t testing.TB, value bool) {
	if !value {
		t.Helper()
		t.Error("Should be true")
	}
}

func False(t testing.TB, value bool) {
	if value {
		t.Helper()
		t.Error("Should be false")
	}
}

func Equal(t testing.TB, expected, actual any) {
	if !reflect.DeepEqual(expected, actual) {
		t.Helper()
		t.Errorf("Not equal:\nexpected: %v\n  actual: %v", expected, actual)
	}
}

func NotEqual(t testing.TB, expected, actual any) {
	if reflect.DeepEqual(expected, actual) {
		t.Helper()
		t.Errorf("Should not be: %v", actual)
	}
}

func NoError(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Errorf("Received unexpected error: %+v", err)
	}
}

// ErrorIs asserts that errors.Is(err, target) holds.
func ErrorIs(t testing.TB, err, target error) {
	if !errors.Is(err, target) {
		t.Helper()
		t.Errorf("Error is not %v: %+v", target, err)
	}
}

func RequireNoError(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("Received unexpected error: %+v", err)
	}
}
