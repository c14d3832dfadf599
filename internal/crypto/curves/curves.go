package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"sort"

	"github.com/ProtonMail/go-crypto/brainpool"
)

// Curve defines the interface for elliptic curve operations needed by the verifier.
// It wraps an underlying group-law implementation (crypto/elliptic for the NIST
// curves, ProtonMail's brainpool package for the Brainpool curves) and adds the
// derived constants the verifier needs.
type Curve interface {
	// Name returns the registry name of the curve (e.g. "secp256r1").
	Name() string

	// Params returns the curve parameters (P, N, G, BitSize).
	Params() *elliptic.CurveParams

	// HalfOrder returns N >> 1, the upper bound for a canonical s.
	HalfOrder() *big.Int

	// IsOnCurve reports whether (x, y) satisfies the curve equation.
	IsOnCurve(x, y *big.Int) bool

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)

	// Double computes 2 * P
	Double(x, y *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int)

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// NewScalar generates a random scalar in [0, N-1]
	NewScalar() (*big.Int, error)
}

// weierstrass adapts an elliptic.Curve to the Curve interface. All nine
// supported curves are short-Weierstrass curves over prime fields, so a single
// wrapper covers them.
type weierstrass struct {
	name      string
	curve     elliptic.Curve
	halfOrder *big.Int
}

func (c *weierstrass) Name() string {
	return c.name
}

func (c *weierstrass) Params() *elliptic.CurveParams {
	return c.curve.Params()
}

func (c *weierstrass) HalfOrder() *big.Int {
	return c.halfOrder
}

func (c *weierstrass) IsOnCurve(x, y *big.Int) bool {
	return c.curve.IsOnCurve(x, y)
}

func (c *weierstrass) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return c.curve.Add(x1, y1, x2, y2)
}

func (c *weierstrass) Double(x, y *big.Int) (*big.Int, *big.Int) {
	return c.curve.Double(x, y)
}

func (c *weierstrass) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	return c.curve.ScalarMult(px, py, k.Bytes())
}

func (c *weierstrass) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return c.curve.ScalarBaseMult(k.Bytes())
}

func (c *weierstrass) NewScalar() (*big.Int, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, c.curve.Params().N)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func newWeierstrass(name string, curve elliptic.Curve) *weierstrass {
	return &weierstrass{
		name:      name,
		curve:     curve,
		halfOrder: new(big.Int).Rsh(curve.Params().N, 1),
	}
}

// The supported curve set is fixed: the three NIST prime curves and the six
// Brainpool curves. Instances are immutable and shared by all verifications.
var (
	secp256r1       = newWeierstrass("secp256r1", elliptic.P256())
	secp384r1       = newWeierstrass("secp384r1", elliptic.P384())
	secp521r1       = newWeierstrass("secp521r1", elliptic.P521())
	brainpoolP256r1 = newWeierstrass("brainpoolP256r1", brainpool.P256r1())
	brainpoolP256t1 = newWeierstrass("brainpoolP256t1", brainpool.P256t1())
	brainpoolP384r1 = newWeierstrass("brainpoolP384r1", brainpool.P384r1())
	brainpoolP384t1 = newWeierstrass("brainpoolP384t1", brainpool.P384t1())
	brainpoolP512r1 = newWeierstrass("brainpoolP512r1", brainpool.P512r1())
	brainpoolP512t1 = newWeierstrass("brainpoolP512t1", brainpool.P512t1())
)

var registry = map[string]Curve{
	secp256r1.name:       secp256r1,
	secp384r1.name:       secp384r1,
	secp521r1.name:       secp521r1,
	brainpoolP256r1.name: brainpoolP256r1,
	brainpoolP256t1.name: brainpoolP256t1,
	brainpoolP384r1.name: brainpoolP384r1,
	brainpoolP384t1.name: brainpoolP384t1,
	brainpoolP512r1.name: brainpoolP512r1,
	brainpoolP512t1.name: brainpoolP512t1,
}

// ByName looks up a supported curve by its registry name.
func ByName(name string) (Curve, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the names of all supported curves, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSecp256r1 returns the NIST P-256 curve wrapper.
func NewSecp256r1() Curve { return secp256r1 }

// NewSecp384r1 returns the NIST P-384 curve wrapper.
func NewSecp384r1() Curve { return secp384r1 }

// NewSecp521r1 returns the NIST P-521 curve wrapper.
func NewSecp521r1() Curve { return secp521r1 }

// NewBrainpoolP256r1 returns the brainpoolP256r1 curve wrapper.
func NewBrainpoolP256r1() Curve { return brainpoolP256r1 }

// NewBrainpoolP256t1 returns the twisted brainpoolP256t1 curve wrapper.
func NewBrainpoolP256t1() Curve { return brainpoolP256t1 }

// NewBrainpoolP384r1 returns the brainpoolP384r1 curve wrapper.
func NewBrainpoolP384r1() Curve { return brainpoolP384r1 }

// NewBrainpoolP384t1 returns the twisted brainpoolP384t1 curve wrapper.
func NewBrainpoolP384t1() Curve { return brainpoolP384t1 }

// NewBrainpoolP512r1 returns the brainpoolP512r1 curve wrapper.
func NewBrainpoolP512r1() Curve { return brainpoolP512r1 }

// NewBrainpoolP512t1 returns the twisted brainpoolP512t1 curve wrapper.
func NewBrainpoolP512t1() Curve { return brainpoolP512t1 }
