// Package ecdsa is the public verification API. It verifies ECDSA signatures
// over nine fixed curves (secp256r1/384r1/521r1 and the six Brainpool curves)
// against caller-supplied digests of any length. The package only verifies;
// signature generation is out of scope.
package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdsa-verify/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa-verify/internal/verify"
)

// PublicKey is an affine public key point. Coordinates are validated on every
// verification; the zero point is rejected as the identity.
type PublicKey struct {
	X *big.Int
	Y *big.Int
}

// Signature is an ECDSA signature pair. S must be in low-s form (s <= n/2);
// high-s signatures are rejected, not normalized.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Errors returned by VerifyDigest. The boolean entry points collapse all of
// them to false.
var (
	ErrUnknownCurve          = errors.New("unknown curve")
	ErrMalformedSignature    = verify.ErrMalformedSignature
	ErrNonCanonicalSignature = verify.ErrNonCanonicalSignature
	ErrInvalidPublicKey      = verify.ErrInvalidPublicKey
	ErrInvalidSignature      = verify.ErrInvalidSignature
)

// CurveNames returns the names accepted by Verify and VerifyDigest, sorted.
func CurveNames() []string {
	return curves.Names()
}

// VerifyDigest verifies sig over digest for the named curve and returns nil
// on success or the error class describing the rejection.
func VerifyDigest(curveName string, pub *PublicKey, digest []byte, sig *Signature) error {
	c, ok := curves.ByName(curveName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCurve, curveName)
	}
	return verifyWith(c, pub, digest, sig)
}

// Verify is the boolean form of VerifyDigest.
func Verify(curveName string, pub *PublicKey, digest []byte, sig *Signature) bool {
	return VerifyDigest(curveName, pub, digest, sig) == nil
}

func verifyWith(c curves.Curve, pub *PublicKey, digest []byte, sig *Signature) error {
	if pub == nil {
		return ErrInvalidPublicKey
	}
	if sig == nil {
		return ErrMalformedSignature
	}
	return verify.Verify(c, pub.X, pub.Y, digest, sig.R, sig.S)
}
