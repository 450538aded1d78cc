package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString_LengthAndCharset(t *testing.T) {
	s, err := MakeRandHexString(16)
	require.NoError(t, err)
	require.Len(t, s, 32)
	for _, r := range s {
		require.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret-password")
	WipeByteArray(b)
	for i := range b {
		require.Zero(t, b[i])
	}
}

func TestWipeByteArray_NilIsSafe(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
}
