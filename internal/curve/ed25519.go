package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/edwards/v2"
	"github.com/sopage/blockchain-utils-go/internal/errs"
)

type ed25519Curve struct{}

// Ed25519Curve is the package-level singleton descriptor for SLIP-0010
// ed25519, grounded on the teacher's use of github.com/decred/dcrd/dcrec/
// edwards/v2 in internal/hd/derive.go's computePublicKey.
var Ed25519Curve Curve = ed25519Curve{}

func (ed25519Curve) ID() ID         { return Ed25519 }
func (ed25519Curve) Family() Family { return FamilyEdwards }
func (ed25519Curve) Name() string   { return "ed25519" }

func (ed25519Curve) Order() *big.Int {
	return edwards.Edwards().N
}

func (ed25519Curve) ScalarSize() int     { return 32 }
func (ed25519Curve) CompressedSize() int { return 32 }

func (c ed25519Curve) ScalarBaseMult(scalar []byte) ([]byte, error) {
	ec := edwards.Edwards()
	s := new(big.Int).SetBytes(scalar)
	s.Mod(s, ec.N)
	_, pub, err := edwards.PrivKeyFromScalar(LeftPad32(s.Bytes()))
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519: scalar base mult")
	}
	return pub.Serialize(), nil
}

func (c ed25519Curve) ScalarMult(point, scalar []byte) ([]byte, error) {
	pub, err := edwards.ParsePubKey(point)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519: parse point")
	}
	ec := edwards.Edwards()
	k := new(big.Int).SetBytes(scalar)
	x, y := ec.ScalarMult(pub.X, pub.Y, k.Bytes())
	return edwards.NewPublicKey(ec, x, y).Serialize(), nil
}

func (c ed25519Curve) AddPoints(p1, p2 []byte) ([]byte, error) {
	pub1, err := edwards.ParsePubKey(p1)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519: parse point 1")
	}
	pub2, err := edwards.ParsePubKey(p2)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519: parse point 2")
	}
	ec := edwards.Edwards()
	x, y := ec.Add(pub1.X, pub1.Y, pub2.X, pub2.Y)
	return edwards.NewPublicKey(ec, x, y).Serialize(), nil
}

func (ed25519Curve) CompressPoint(point []byte) ([]byte, error) {
	pub, err := edwards.ParsePubKey(point)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519: parse point")
	}
	return pub.Serialize(), nil
}

func (ed25519Curve) IsOnCurve(compressed []byte) bool {
	pub, err := edwards.ParsePubKey(compressed)
	if err != nil {
		return false
	}
	ec := edwards.Edwards()
	if !ec.IsOnCurve(pub.X, pub.Y) {
		return false
	}
	// Multiplying by the cofactor 8 sends the identity and every
	// low-order point to the identity (0, 1).
	x, _ := ec.ScalarMult(pub.X, pub.Y, []byte{8})
	return x.Sign() != 0
}

// SupportsPublicDerivation is false: pure SLIP-0010 ed25519 only allows
// hardened derivation, since there is no ed25519 scalar-times-basepoint
// operation safe to perform from a public key alone under this scheme.
func (ed25519Curve) SupportsPublicDerivation() bool { return false }

// Uncompress is not meaningful for Edwards curves; ed25519 has a single
// canonical compressed encoding.
func (ed25519Curve) Uncompress([]byte) ([]byte, error) {
	return nil, errs.Wrap(errs.ErrInvalidArgument, "ed25519: no uncompressed encoding")
}
