package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/sopage/blockchain-utils-go/internal/errs"
)

type secp256k1Curve struct{}

// Secp256k1Curve is the package-level singleton descriptor for secp256k1.
var Secp256k1Curve Curve = secp256k1Curve{}

func (secp256k1Curve) ID() ID         { return Secp256k1 }
func (secp256k1Curve) Family() Family { return FamilyWeierstrass }
func (secp256k1Curve) Name() string   { return "secp256k1" }

func (secp256k1Curve) Order() *big.Int {
	return secp256k1.S256().N
}

func (secp256k1Curve) ScalarSize() int     { return 32 }
func (secp256k1Curve) CompressedSize() int { return 33 }

func (c secp256k1Curve) ScalarBaseMult(scalar []byte) ([]byte, error) {
	if err := ValidateScalar(c, scalar); err != nil {
		return nil, err
	}
	priv := secp256k1.PrivKeyFromBytes(scalar)
	return priv.PubKey().SerializeCompressed(), nil
}

func (c secp256k1Curve) ScalarMult(point, scalar []byte) ([]byte, error) {
	pub, err := secp256k1.ParsePubKey(point)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "secp256k1: parse point")
	}
	x, y := secp256k1.S256().ScalarMult(pub.X(), pub.Y(), scalar)
	return compressSecp256k1XY(x, y), nil
}

func (c secp256k1Curve) AddPoints(p1, p2 []byte) ([]byte, error) {
	pub1, err := secp256k1.ParsePubKey(p1)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "secp256k1: parse point 1")
	}
	pub2, err := secp256k1.ParsePubKey(p2)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "secp256k1: parse point 2")
	}
	x, y := secp256k1.S256().Add(pub1.X(), pub1.Y(), pub2.X(), pub2.Y())
	return compressSecp256k1XY(x, y), nil
}

func (secp256k1Curve) CompressPoint(point []byte) ([]byte, error) {
	pub, err := secp256k1.ParsePubKey(point)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "secp256k1: parse point")
	}
	return pub.SerializeCompressed(), nil
}

func (secp256k1Curve) IsOnCurve(compressed []byte) bool {
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return false
	}
	return secp256k1.S256().IsOnCurve(pub.X(), pub.Y())
}

func (secp256k1Curve) SupportsPublicDerivation() bool { return true }

func (secp256k1Curve) Uncompress(compressed []byte) ([]byte, error) {
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "secp256k1: parse point")
	}
	return pub.SerializeUncompressed(), nil
}

func compressSecp256k1XY(x, y *big.Int) []byte {
	out := make([]byte, 33)
	if y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xBytes := x.Bytes()
	copy(out[33-len(xBytes):], xBytes)
	return out
}
