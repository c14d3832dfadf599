package verify

import "math/big"

// ReduceDigest converts a digest of any length into a scalar modulo the curve
// order n, following the ECDSA hash-to-integer convention: the digest is read
// as a big-endian integer, truncated to the leftmost BitLen(n) bits when it is
// longer, and reduced mod n. Shorter digests are used as-is, which matches
// left-padding with zero bits.
func ReduceDigest(digest []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}

	e := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		e.Rsh(e, uint(excess))
	}
	return e.Mod(e, n)
}
