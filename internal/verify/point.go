package verify

import (
	"math/big"

	"github.com/smallyu/go-ecdsa-verify/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa-verify/internal/crypto/msm"
)

// validatePublicKey gates the public key before it reaches any scalar
// multiplication: coordinates must be field elements in [0, p), the point must
// not be the identity, and it must satisfy the curve equation with the curve's
// own a and b coefficients. Accepting an off-curve point would open the
// verifier to invalid-curve attacks.
func validatePublicKey(c curves.Curve, x, y *big.Int) error {
	if x == nil || y == nil {
		return ErrInvalidPublicKey
	}
	if msm.IsIdentity(x, y) {
		return ErrInvalidPublicKey
	}
	p := c.Params().P
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return ErrInvalidPublicKey
	}
	if !c.IsOnCurve(x, y) {
		return ErrInvalidPublicKey
	}
	return nil
}
