// Package verify implements generic ECDSA signature verification over the
// supported curves. The same pipeline serves every curve; all per-curve data
// comes from the curves registry.
package verify

import (
	"math/big"

	"github.com/smallyu/go-ecdsa-verify/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa-verify/internal/crypto/msm"
	"github.com/smallyu/go-ecdsa-verify/internal/logger"
)

// Verify checks the signature (r, s) over digest against the public key
// (x, y) on curve c. It returns nil when the signature is valid and one of
// the package error values describing the rejection otherwise.
//
// The checks run in a fixed order with early exit: structural r/s range,
// low-s canonicality, digest reduction, inversion, public key validation,
// joint multiplication, and the final x-coordinate comparison mod n.
func Verify(c curves.Curve, x, y *big.Int, digest []byte, r, s *big.Int) error {
	n := c.Params().N

	if r == nil || s == nil || r.Sign() <= 0 || s.Sign() <= 0 ||
		r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return reject(c, ErrMalformedSignature)
	}

	// The low-s gate runs before any inverse or point arithmetic.
	if !isCanonical(s, c.HalfOrder()) {
		return reject(c, ErrNonCanonicalSignature)
	}

	e := ReduceDigest(digest, n)

	w, err := invertScalar(s, n)
	if err != nil {
		return reject(c, err)
	}

	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	if err := validatePublicKey(c, x, y); err != nil {
		return reject(c, err)
	}

	rx, ry := msm.Combine(c, u1, u2, x, y)
	if msm.IsIdentity(rx, ry) {
		return reject(c, ErrInvalidSignature)
	}

	// rx is reduced mod p; the comparison is mod n, and p != n, so the
	// second reduction must not be skipped.
	v := new(big.Int).Mod(rx, n)
	if v.Cmp(r) != 0 {
		return reject(c, ErrInvalidSignature)
	}

	return nil
}

func reject(c curves.Curve, err error) error {
	log := logger.Logger()
	log.Debug().Str("curve", c.Name()).Err(err).Msg("signature rejected")
	return err
}
