package verify

import "math/big"

// invertScalar computes s^-1 mod n. The verifier rejects s = 0 before the
// inversion is reached, so the zero check should be unreachable.
func invertScalar(s, n *big.Int) (*big.Int, error) {
	if s.Sign() == 0 {
		return nil, ErrInvalidSignature
	}
	w := new(big.Int).ModInverse(s, n)
	if w == nil {
		// n is prime, so every nonzero s < n is invertible.
		return nil, ErrInvalidSignature
	}
	return w, nil
}

// isCanonical reports whether s is in low-s form, i.e. s <= n/2. The half
// order is precomputed per curve.
func isCanonical(s, halfOrder *big.Int) bool {
	return s.Cmp(halfOrder) <= 0
}
