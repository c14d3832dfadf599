// Package msm implements the two-point multi-scalar multiplication used by
// ECDSA verification: u1*G + u2*Q evaluated in a single joint double-and-add
// pass (Straus-Shamir), which needs one doubling chain and at most one point
// addition per scalar bit instead of two full scalar multiplications.
package msm

import (
	"math/big"

	"github.com/smallyu/go-ecdsa-verify/internal/crypto/curves"
)

// IsIdentity reports whether (x, y) is the point at infinity under the
// (0, 0) affine convention used by the curve libraries.
func IsIdentity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// Combine computes u1*G + u2*Q where G is the curve generator and Q = (qx, qy).
// Both scalars' bits are processed together from the most significant bit down;
// at each step the accumulator is doubled and then G, Q, or the precomputed
// G+Q is added depending on the bit pair. The result may be the identity,
// reported as (0, 0).
func Combine(c curves.Curve, u1, u2, qx, qy *big.Int) (*big.Int, *big.Int) {
	params := c.Params()

	// Precompute G+Q once; the group law handles Q = ±G.
	sumX, sumY := c.Add(params.Gx, params.Gy, qx, qy)

	// Accumulator starts at the identity.
	rx, ry := new(big.Int), new(big.Int)

	bits := u1.BitLen()
	if u2.BitLen() > bits {
		bits = u2.BitLen()
	}

	for i := bits - 1; i >= 0; i-- {
		rx, ry = c.Double(rx, ry)
		switch {
		case u1.Bit(i) == 1 && u2.Bit(i) == 1:
			rx, ry = c.Add(rx, ry, sumX, sumY)
		case u1.Bit(i) == 1:
			rx, ry = c.Add(rx, ry, params.Gx, params.Gy)
		case u2.Bit(i) == 1:
			rx, ry = c.Add(rx, ry, qx, qy)
		}
	}

	return rx, ry
}
