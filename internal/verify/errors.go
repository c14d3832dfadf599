package verify

import "errors"

// Verification failure classes. Each rejection maps to exactly one of these;
// callers that only need the boolean outcome can compare against nil.
var (
	// ErrMalformedSignature is returned when r or s is zero or out of the
	// scalar range [1, n-1].
	ErrMalformedSignature = errors.New("malformed signature: r or s out of range")

	// ErrNonCanonicalSignature is returned when s exceeds half the curve
	// order. The signature may be mathematically valid in its (r, n-s)
	// form, but callers must normalize to low-s before verifying.
	ErrNonCanonicalSignature = errors.New("non-canonical signature: s exceeds half the curve order")

	// ErrInvalidPublicKey is returned when the public key coordinates are
	// out of field range, off the curve, or encode the identity.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignature is returned when all structural checks pass but
	// the signature does not verify against the key and digest.
	ErrInvalidSignature = errors.New("invalid signature")
)
