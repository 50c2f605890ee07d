package symmetric_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"kyberkex/internal/params"
	"kyberkex/internal/symmetric"
)

// Backend-agnostic contract tests: sizes, determinism and domain separation
// must hold for both symmetric backends.

func TestHashes_DomainSeparated(t *testing.T) {
	in := []byte("the same input for every primitive")

	h := symmetric.H(in)
	g := symmetric.G(in)
	k := symmetric.KDF(in)

	require.Len(t, h[:], params.SymBytes)
	require.Len(t, g[:], 2*params.SymBytes)
	require.Len(t, k[:], params.SharedSecretBytes)

	// No two primitives may agree on the same input.
	require.False(t, bytes.Equal(h[:], g[:params.SymBytes]))
	require.False(t, bytes.Equal(h[:], k[:]))
	require.False(t, bytes.Equal(k[:], g[:params.SymBytes]))
}

func TestHashes_Deterministic(t *testing.T) {
	in := []byte("determinism")
	require.Equal(t, symmetric.H(in), symmetric.H(in))
	require.Equal(t, symmetric.G(in), symmetric.G(in))
	require.Equal(t, symmetric.KDF(in), symmetric.KDF(in))
}

func TestXOF_RestartableAndDomainSeparated(t *testing.T) {
	seed := bytes.Repeat([]byte{0xa5}, params.SymBytes)

	var x symmetric.XOF
	out1 := make([]byte, 2*symmetric.XOFBlockBytes)
	x.Absorb(seed, 0, 1)
	x.SqueezeBlocks(out1, 2)

	// A fresh absorb restarts the stream.
	out2 := make([]byte, 2*symmetric.XOFBlockBytes)
	x.Absorb(seed, 0, 1)
	x.SqueezeBlocks(out2[:symmetric.XOFBlockBytes], 1)
	x.SqueezeBlocks(out2[symmetric.XOFBlockBytes:], 1)
	require.Equal(t, out1, out2)

	// Swapped domain bytes give an unrelated stream.
	out3 := make([]byte, 2*symmetric.XOFBlockBytes)
	x.Absorb(seed, 1, 0)
	x.SqueezeBlocks(out3, 2)
	require.NotEqual(t, out1, out3)
}

func TestPRF_NonceSeparated(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, params.SymBytes)

	a := make([]byte, 128)
	b := make([]byte, 128)
	symmetric.PRF(a, key, 0)
	symmetric.PRF(b, key, 1)
	require.NotEqual(t, a, b)

	c := make([]byte, 128)
	symmetric.PRF(c, key, 0)
	require.Equal(t, a, c)
}
