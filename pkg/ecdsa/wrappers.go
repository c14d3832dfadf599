package ecdsa

import "github.com/smallyu/go-ecdsa-verify/internal/crypto/curves"

// Per-curve entry points. Each binds one curve and forwards to the generic
// verifier with no additional logic.

// VerifySecp256r1 verifies sig over digest on NIST P-256.
func VerifySecp256r1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewSecp256r1(), pub, digest, sig) == nil
}

// VerifySecp384r1 verifies sig over digest on NIST P-384.
func VerifySecp384r1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewSecp384r1(), pub, digest, sig) == nil
}

// VerifySecp521r1 verifies sig over digest on NIST P-521.
func VerifySecp521r1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewSecp521r1(), pub, digest, sig) == nil
}

// VerifyBrainpoolP256r1 verifies sig over digest on brainpoolP256r1.
func VerifyBrainpoolP256r1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewBrainpoolP256r1(), pub, digest, sig) == nil
}

// VerifyBrainpoolP256t1 verifies sig over digest on brainpoolP256t1.
func VerifyBrainpoolP256t1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewBrainpoolP256t1(), pub, digest, sig) == nil
}

// VerifyBrainpoolP384r1 verifies sig over digest on brainpoolP384r1.
func VerifyBrainpoolP384r1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewBrainpoolP384r1(), pub, digest, sig) == nil
}

// VerifyBrainpoolP384t1 verifies sig over digest on brainpoolP384t1.
func VerifyBrainpoolP384t1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewBrainpoolP384t1(), pub, digest, sig) == nil
}

// VerifyBrainpoolP512r1 verifies sig over digest on brainpoolP512r1.
func VerifyBrainpoolP512r1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewBrainpoolP512r1(), pub, digest, sig) == nil
}

// VerifyBrainpoolP512t1 verifies sig over digest on brainpoolP512t1.
func VerifyBrainpoolP512t1(pub *PublicKey, digest []byte, sig *Signature) bool {
	return verifyWith(curves.NewBrainpoolP512t1(), pub, digest, sig) == nil
}
