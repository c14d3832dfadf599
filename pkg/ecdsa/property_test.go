package ecdsa

import (
	"crypto/elliptic"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Flipping any single bit of the signature, the digest, or the public key
// coordinates must turn an accepted signature into a rejected one.
func TestBitFlipRejection(t *testing.T) {
	digest := sha256.Sum256([]byte("bit flip target"))
	pub, sig := newKeyAndSig(t, elliptic.P256(), digest[:])
	if !VerifySecp256r1(pub, digest[:], sig) {
		t.Fatal("baseline signature does not verify")
	}

	flip := func(v *big.Int, bit int) *big.Int {
		return new(big.Int).SetBit(v, bit, 1-v.Bit(bit))
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("flipped r bit rejects", prop.ForAll(
		func(bit int) bool {
			return !VerifySecp256r1(pub, digest[:], &Signature{R: flip(sig.R, bit), S: sig.S})
		},
		gen.IntRange(0, 255),
	))

	properties.Property("flipped s bit rejects", prop.ForAll(
		func(bit int) bool {
			return !VerifySecp256r1(pub, digest[:], &Signature{R: sig.R, S: flip(sig.S, bit)})
		},
		gen.IntRange(0, 255),
	))

	properties.Property("flipped digest bit rejects", prop.ForAll(
		func(bit int) bool {
			mutated := digest
			mutated[bit/8] ^= 1 << uint(bit%8)
			return !VerifySecp256r1(pub, mutated[:], sig)
		},
		gen.IntRange(0, 255),
	))

	properties.Property("flipped pubkey coordinate bit rejects", prop.ForAll(
		func(bit int, useY bool) bool {
			mutated := &PublicKey{X: pub.X, Y: pub.Y}
			if useY {
				mutated.Y = flip(pub.Y, bit)
			} else {
				mutated.X = flip(pub.X, bit)
			}
			return !VerifySecp256r1(mutated, digest[:], sig)
		},
		gen.IntRange(0, 255),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
