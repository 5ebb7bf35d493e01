package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetT sets the test used by the helpers in this package.
func SetT(t *testing.T) {
	testT = t
}

// NoErr requires err to be nil and returns v.
func NoErr[T any](v T, err error) T {
	testT.Helper()
	require.NoError(testT, err)
	return v
}

// Err requires err to be non-nil and returns it.
func Err[T any](_ T, err error) error {
	testT.Helper()
	require.Error(testT, err)
	return err
}
