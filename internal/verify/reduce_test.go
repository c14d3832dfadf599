package verify

import (
	"crypto/sha256"
	"crypto/sha512"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa-verify/internal/crypto/curves"
)

func TestReduceDigestEqualLength(t *testing.T) {
	n := curves.NewSecp256r1().Params().N
	digest := sha256.Sum256([]byte("hello"))

	e := ReduceDigest(digest[:], n)
	want := new(big.Int).SetBytes(digest[:])
	want.Mod(want, n)
	assert.Equal(t, want, e)
}

func TestReduceDigestLongerThanOrder(t *testing.T) {
	// A 64-byte digest against a 256-bit order keeps only the leftmost
	// 32 bytes.
	n := curves.NewSecp256r1().Params().N
	digest := sha512.Sum512([]byte("hello"))

	e := ReduceDigest(digest[:], n)
	want := new(big.Int).SetBytes(digest[:32])
	want.Mod(want, n)
	assert.Equal(t, want, e)
}

func TestReduceDigestShorterThanOrder(t *testing.T) {
	// A 32-byte digest against the 521-bit order is below n and passes
	// through unreduced.
	n := curves.NewSecp521r1().Params().N
	digest := sha256.Sum256([]byte("hello"))

	e := ReduceDigest(digest[:], n)
	assert.Equal(t, new(big.Int).SetBytes(digest[:]), e)
}

func TestReduceDigestExcessBits(t *testing.T) {
	// The 521-bit order occupies 66 bytes, so a 66-byte digest carries 7
	// excess bits that are shifted out. Encoding k << 7 must reduce back
	// to k.
	c := curves.NewSecp521r1()
	n := c.Params().N

	k, err := c.NewScalar()
	require.NoError(t, err)

	digest := make([]byte, 66)
	new(big.Int).Lsh(k, 7).FillBytes(digest)
	assert.Equal(t, k, ReduceDigest(digest, n))
}

func TestReduceDigestLeadingZeroBytes(t *testing.T) {
	// Extra leading zero bytes shift the tail out of the truncation
	// window, so only the leftmost order-length window counts.
	n := curves.NewSecp256r1().Params().N
	digest := sha256.Sum256([]byte("hello"))

	padded := append(make([]byte, 32), digest[:]...)
	assert.Equal(t, ReduceDigest(make([]byte, 32), n), ReduceDigest(padded, n))
}

func TestReduceDigestStable(t *testing.T) {
	n := curves.NewBrainpoolP384r1().Params().N
	digest := sha512.Sum512([]byte("stable"))

	first := ReduceDigest(digest[:], n)
	second := ReduceDigest(digest[:], n)
	assert.Equal(t, first, second)
	assert.True(t, first.Cmp(n) < 0)

	// Empty digests are valid input and reduce to zero.
	assert.Equal(t, 0, ReduceDigest(nil, n).Sign())
}
