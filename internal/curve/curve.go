// Package curve provides the elliptic-curve primitives shared by the key,
// signer and bip32 packages: one descriptor per supported curve, exposing
// scalar/point arithmetic and compressed-point encoding behind a single
// interface. The set of curves is closed and dispatched by ID rather than
// through an open interface hierarchy, so callers switch on a finite,
// compiler-checkable tag instead of relying on dynamic type assertions.
package curve

import (
	"math/big"

	"github.com/sopage/blockchain-utils-go/internal/errs"
)

// ID tags one of the closed set of supported curves.
type ID int

const (
	Secp256k1 ID = iota
	NIST256p1
	Ed25519
	Ed25519Kholaw
)

func (id ID) String() string {
	switch id {
	case Secp256k1:
		return "secp256k1"
	case NIST256p1:
		return "nist256p1"
	case Ed25519:
		return "ed25519"
	case Ed25519Kholaw:
		return "ed25519-kholaw"
	default:
		return "unknown"
	}
}

// Family groups curves that share a point-arithmetic and derivation shape.
type Family int

const (
	FamilyWeierstrass Family = iota
	FamilyEdwards
)

// Curve is the immutable, per-curve capability record described by
// spec.md §3's "curve descriptor". Implementations are package-level
// singletons, never mutated after construction.
type Curve interface {
	ID() ID
	Family() Family
	Name() string

	// Order returns the group order n, shared by reference.
	Order() *big.Int

	// ScalarSize is the byte length of a scalar/private key for this curve.
	ScalarSize() int

	// CompressedSize is the byte length of a compressed public key.
	CompressedSize() int

	// ScalarBaseMult returns scalar*G in this curve's native point encoding.
	ScalarBaseMult(scalar []byte) (point []byte, err error)

	// ScalarMult returns scalar*P for point P, in native point encoding.
	ScalarMult(point, scalar []byte) ([]byte, error)

	// AddPoints returns p1+p2, both in native point encoding.
	AddPoints(p1, p2 []byte) ([]byte, error)

	// CompressPoint normalizes a point (compressed or uncompressed
	// Weierstrass, or native 32-byte Edwards) into the curve's
	// canonical compressed encoding.
	CompressPoint(point []byte) ([]byte, error)

	// IsOnCurve reports whether a compressed point encodes a valid,
	// non-identity (and for Edwards, non-low-order) curve point.
	IsOnCurve(compressed []byte) bool

	// Uncompress returns the 65-byte 0x04||X||Y uncompressed encoding for
	// Weierstrass curves. Not meaningful for Edwards curves.
	Uncompress(compressed []byte) ([]byte, error)

	// SupportsPublicDerivation reports whether ckdPub is defined for
	// this curve (false for pure ed25519 SLIP-0010).
	SupportsPublicDerivation() bool
}

// ByID returns the singleton descriptor for id.
func ByID(id ID) (Curve, error) {
	switch id {
	case Secp256k1:
		return Secp256k1Curve, nil
	case NIST256p1:
		return NIST256p1Curve, nil
	case Ed25519:
		return Ed25519Curve, nil
	case Ed25519Kholaw:
		return Ed25519KholawCurve, nil
	default:
		return nil, errs.Wrapf(errs.ErrUnsupportedCurve, "curve id %d", int(id))
	}
}

// ValidateScalar checks b is exactly curve.ScalarSize() bytes and, as a
// big-endian integer, lies in [1, order-1].
func ValidateScalar(c Curve, b []byte) error {
	if len(b) != c.ScalarSize() {
		return errs.Wrapf(errs.ErrInvalidKey, "%s: scalar must be %d bytes, got %d", c.Name(), c.ScalarSize(), len(b))
	}
	s := new(big.Int).SetBytes(b)
	if s.Sign() == 0 {
		return errs.Wrapf(errs.ErrInvalidKey, "%s: scalar is zero", c.Name())
	}
	if s.Cmp(c.Order()) >= 0 {
		return errs.Wrapf(errs.ErrInvalidKey, "%s: scalar >= curve order", c.Name())
	}
	return nil
}

// LeftPad32 left-pads b with zero bytes to 32 bytes, or truncates from the
// left if longer. Grounded on the teacher's leftPadTo32Bytes helper.
func LeftPad32(b []byte) []byte {
	out := make([]byte, 32)
	if len(b) >= 32 {
		copy(out, b[len(b)-32:])
		return out
	}
	copy(out[32-len(b):], b)
	return out
}
