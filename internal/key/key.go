// Package key defines curve-parameterized private/public key value types,
// generalizing the validation shape of the teacher's internal/hd/types.go
// sentinel-error checks into the typed constructors spec.md §4.D names.
package key

import (
	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
)

// PrivateKey is an immutable {curve, scalar} pair. Construction guarantees
// the scalar is exactly curve.ScalarSize() bytes and in [1, order-1]
// (spec.md §3's private-key invariant), except for Ed25519Kholaw, whose
// 64-byte clamped extended form is handled by internal/bip32 directly and
// never wrapped in a PrivateKey value.
type PrivateKey struct {
	curveID curve.ID
	scalar  []byte
}

// PrivateFromBytes validates and wraps scalar bytes for curveID.
func PrivateFromBytes(curveID curve.ID, scalar []byte) (PrivateKey, error) {
	c, err := curve.ByID(curveID)
	if err != nil {
		return PrivateKey{}, err
	}
	if err := curve.ValidateScalar(c, scalar); err != nil {
		return PrivateKey{}, err
	}
	cp := make([]byte, len(scalar))
	copy(cp, scalar)
	return PrivateKey{curveID: curveID, scalar: cp}, nil
}

// Curve returns the ID of the curve this key belongs to.
func (p PrivateKey) Curve() curve.ID { return p.curveID }

// RawScalar returns a copy of the raw scalar bytes.
func (p PrivateKey) RawScalar() []byte {
	out := make([]byte, len(p.scalar))
	copy(out, p.scalar)
	return out
}

// Public derives the corresponding public key deterministically
// (spec.md property 1: public(private_from_bytes(p)) == public_from_private(p)).
func (p PrivateKey) Public() (PublicKey, error) {
	c, err := curve.ByID(p.curveID)
	if err != nil {
		return PublicKey{}, err
	}
	point, err := c.ScalarBaseMult(p.scalar)
	if err != nil {
		return PublicKey{}, errs.Wrap(err, "derive public key")
	}
	return PublicKey{curveID: p.curveID, point: point}, nil
}

// PublicFromPrivate is the free-function form spec.md §4.D names
// alongside the PrivateKey.Public() method; both must agree (property 1).
func PublicFromPrivate(p PrivateKey) (PublicKey, error) {
	return p.Public()
}

// PublicKey is an immutable {curve, point} pair, stored in the curve's
// canonical compressed encoding.
type PublicKey struct {
	curveID curve.ID
	point   []byte
}

// PublicFromBytes accepts a compressed or uncompressed encoding, validates
// on-curve membership, rejects the identity point, and (for Edwards
// curves) rejects low-order points via the curve's IsOnCurve check.
func PublicFromBytes(curveID curve.ID, raw []byte) (PublicKey, error) {
	c, err := curve.ByID(curveID)
	if err != nil {
		return PublicKey{}, err
	}
	compressed, err := c.CompressPoint(raw)
	if err != nil {
		return PublicKey{}, errs.Wrap(errs.ErrInvalidKey, "public key: "+err.Error())
	}
	if !c.IsOnCurve(compressed) {
		return PublicKey{}, errs.Wrap(errs.ErrInvalidKey, "public key: point not on curve")
	}
	if isIdentity(compressed) {
		return PublicKey{}, errs.Wrap(errs.ErrInvalidKey, "public key: identity point")
	}
	out := make([]byte, len(compressed))
	copy(out, compressed)
	return PublicKey{curveID: curveID, point: out}, nil
}

// Curve returns the ID of the curve this key belongs to.
func (p PublicKey) Curve() curve.ID { return p.curveID }

// Compressed returns a copy of the canonical compressed encoding.
func (p PublicKey) Compressed() []byte {
	out := make([]byte, len(p.point))
	copy(out, p.point)
	return out
}

// Uncompressed returns the 65-byte uncompressed encoding for Weierstrass
// curves. Edwards curves have no distinct uncompressed form and return
// the compressed bytes unchanged.
func (p PublicKey) Uncompressed() ([]byte, error) {
	c, err := curve.ByID(p.curveID)
	if err != nil {
		return nil, err
	}
	if c.Family() != curve.FamilyWeierstrass {
		return p.Compressed(), nil
	}
	return c.Uncompress(p.point)
}

func isIdentity(compressed []byte) bool {
	allZero := true
	for _, b := range compressed[1:] {
		if b != 0 {
			allZero = false
			break
		}
	}
	return allZero
}
