package curve

import (
	"crypto/elliptic"
	"math/big"

	"github.com/sopage/blockchain-utils-go/internal/errs"
)

type nist256p1Curve struct{}

// NIST256p1Curve is the package-level singleton descriptor for NIST P-256.
// No library in the reference corpus ships dedicated P-256 group-law code
// (the decred/btcsuite stacks are secp256k1/edwards-only), so point
// arithmetic here is built directly on stdlib crypto/elliptic, the same
// surface bnb-chain-tss-lib's decompressPoint_P256 builds on.
var NIST256p1Curve Curve = nist256p1Curve{}

func (nist256p1Curve) ID() ID         { return NIST256p1 }
func (nist256p1Curve) Family() Family { return FamilyWeierstrass }
func (nist256p1Curve) Name() string   { return "nist256p1" }

func (nist256p1Curve) Order() *big.Int {
	return elliptic.P256().Params().N
}

func (nist256p1Curve) ScalarSize() int     { return 32 }
func (nist256p1Curve) CompressedSize() int { return 33 }

func (c nist256p1Curve) ScalarBaseMult(scalar []byte) ([]byte, error) {
	if err := ValidateScalar(c, scalar); err != nil {
		return nil, err
	}
	x, y := elliptic.P256().ScalarBaseMult(scalar)
	return compressP256XY(x, y), nil
}

func (c nist256p1Curve) ScalarMult(point, scalar []byte) ([]byte, error) {
	x, y, err := decompressP256(point)
	if err != nil {
		return nil, err
	}
	rx, ry := elliptic.P256().ScalarMult(x, y, scalar)
	return compressP256XY(rx, ry), nil
}

func (c nist256p1Curve) AddPoints(p1, p2 []byte) ([]byte, error) {
	x1, y1, err := decompressP256(p1)
	if err != nil {
		return nil, err
	}
	x2, y2, err := decompressP256(p2)
	if err != nil {
		return nil, err
	}
	rx, ry := elliptic.P256().Add(x1, y1, x2, y2)
	return compressP256XY(rx, ry), nil
}

func (nist256p1Curve) CompressPoint(point []byte) ([]byte, error) {
	x, y, err := decompressP256(point)
	if err != nil {
		return nil, err
	}
	return compressP256XY(x, y), nil
}

func (nist256p1Curve) IsOnCurve(compressed []byte) bool {
	x, y, err := decompressP256(compressed)
	if err != nil {
		return false
	}
	return elliptic.P256().IsOnCurve(x, y)
}

func (nist256p1Curve) SupportsPublicDerivation() bool { return true }

func (nist256p1Curve) Uncompress(compressed []byte) ([]byte, error) {
	x, y, err := decompressP256(compressed)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 65)
	out[0] = 0x04
	xb, yb := x.Bytes(), y.Bytes()
	copy(out[1+32-len(xb):33], xb)
	copy(out[33+32-len(yb):65], yb)
	return out, nil
}

func compressP256XY(x, y *big.Int) []byte {
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

// decompressP256 accepts either a 33-byte compressed or 65-byte
// uncompressed P-256 point and returns its affine coordinates. Compressed
// y-recovery uses a modular square root, grounded on bnb-chain-tss-lib's
// decompressPoint_P256 (y^2 = x^3 - 3x + b), using big.Int.ModSqrt since
// P-256's prime is 3 mod 4, making Tonelli-Shanks unnecessary.
func decompressP256(point []byte) (*big.Int, *big.Int, error) {
	params := elliptic.P256().Params()
	switch {
	case len(point) == 65 && point[0] == 0x04:
		x := new(big.Int).SetBytes(point[1:33])
		y := new(big.Int).SetBytes(point[33:65])
		if !elliptic.P256().IsOnCurve(x, y) {
			return nil, nil, errs.Wrap(errs.ErrInvalidKey, "nist256p1: point not on curve")
		}
		return x, y, nil
	case len(point) == 33 && (point[0] == 0x02 || point[0] == 0x03):
		x := new(big.Int).SetBytes(point[1:])
		if x.Cmp(params.P) >= 0 {
			return nil, nil, errs.Wrap(errs.ErrInvalidKey, "nist256p1: x out of range")
		}
		x3 := new(big.Int).Exp(x, big.NewInt(3), params.P)
		threeX := new(big.Int).Mul(x, big.NewInt(3))
		threeX.Mod(threeX, params.P)
		y2 := new(big.Int).Sub(x3, threeX)
		y2.Add(y2, params.B)
		y2.Mod(y2, params.P)
		y := new(big.Int).ModSqrt(y2, params.P)
		if y == nil {
			return nil, nil, errs.Wrap(errs.ErrInvalidKey, "nist256p1: invalid compressed point")
		}
		wantOdd := point[0] == 0x03
		if (y.Bit(0) == 1) != wantOdd {
			y.Sub(params.P, y)
		}
		return x, y, nil
	default:
		return nil, nil, errs.Wrapf(errs.ErrInvalidKey, "nist256p1: unsupported point encoding length %d", len(point))
	}
}
