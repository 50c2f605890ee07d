package ctsel_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"kyberkex/internal/util/ctsel"
)

func randBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestVerify_Equal(t *testing.T) {
	for _, n := range []int{1, 32, 1088} {
		a := randBytes(t, n)
		b := append([]byte(nil), a...)
		require.Equal(t, 0, ctsel.Verify(a, b), "len %d", n)
	}
}

func TestVerify_DifferAnywhere(t *testing.T) {
	a := randBytes(t, 64)
	for i := range a {
		b := append([]byte(nil), a...)
		b[i] ^= 0x01
		require.NotEqual(t, 0, ctsel.Verify(a, b), "difference at %d not detected", i)
	}
}

func TestCmov_ConditionSet(t *testing.T) {
	dst := randBytes(t, 32)
	src := randBytes(t, 32)
	want := append([]byte(nil), src...)

	ctsel.Cmov(dst, src, 1)
	require.Equal(t, want, dst)
}

func TestCmov_ConditionClear(t *testing.T) {
	dst := randBytes(t, 32)
	src := randBytes(t, 32)
	want := append([]byte(nil), dst...)

	ctsel.Cmov(dst, src, 0)
	require.Equal(t, want, dst)
}
