package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/edwards/v2"
	"github.com/sopage/blockchain-utils-go/internal/errs"
)

type ed25519KholawCurve struct{}

// Ed25519KholawCurve is the package-level singleton descriptor for
// Cardano's BIP32-Ed25519 (Kholaw) variant. Point arithmetic reuses the
// same Edwards25519 group as Ed25519Curve (no dedicated Cardano library
// exists anywhere in the reference corpus); what differs is the shape of
// the private key material (a 64-byte clamped (kL, kR) pair rather than a
// bare 32-byte scalar) and the master-key/child-derivation construction,
// both handled in internal/bip32. ScalarSize here names the size of kL,
// the half that feeds point arithmetic; internal/bip32 is responsible for
// carrying kR and chain code alongside it.
var Ed25519KholawCurve Curve = ed25519KholawCurve{}

func (ed25519KholawCurve) ID() ID         { return Ed25519Kholaw }
func (ed25519KholawCurve) Family() Family { return FamilyEdwards }
func (ed25519KholawCurve) Name() string   { return "ed25519-kholaw" }

func (ed25519KholawCurve) Order() *big.Int {
	return edwards.Edwards().N
}

func (ed25519KholawCurve) ScalarSize() int     { return 32 }
func (ed25519KholawCurve) CompressedSize() int { return 32 }

// ScalarBaseMult treats scalar as an already-clamped little-endian kL and
// computes kL*G directly, without the modular reduction Ed25519Curve
// applies: Kholaw's clamping already guarantees a value in the scalar's
// valid range, and reducing mod the group order would silently diverge
// from the Cardano derivation rules it must match bit-for-bit.
func (c ed25519KholawCurve) ScalarBaseMult(scalar []byte) ([]byte, error) {
	if len(scalar) != 32 {
		return nil, errs.Wrapf(errs.ErrInvalidKey, "ed25519-kholaw: kL must be 32 bytes, got %d", len(scalar))
	}
	ec := edwards.Edwards()
	kL := new(big.Int).SetBytes(reverseBytes(scalar)) // little-endian -> big.Int
	x, y := ec.ScalarBaseMult(kL.Bytes())
	return edwards.NewPublicKey(ec, x, y).Serialize(), nil
}

func (c ed25519KholawCurve) ScalarMult(point, scalar []byte) ([]byte, error) {
	pub, err := edwards.ParsePubKey(point)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519-kholaw: parse point")
	}
	ec := edwards.Edwards()
	k := new(big.Int).SetBytes(reverseBytes(scalar))
	x, y := ec.ScalarMult(pub.X, pub.Y, k.Bytes())
	return edwards.NewPublicKey(ec, x, y).Serialize(), nil
}

func (c ed25519KholawCurve) AddPoints(p1, p2 []byte) ([]byte, error) {
	pub1, err := edwards.ParsePubKey(p1)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519-kholaw: parse point 1")
	}
	pub2, err := edwards.ParsePubKey(p2)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519-kholaw: parse point 2")
	}
	ec := edwards.Edwards()
	x, y := ec.Add(pub1.X, pub1.Y, pub2.X, pub2.Y)
	return edwards.NewPublicKey(ec, x, y).Serialize(), nil
}

func (ed25519KholawCurve) CompressPoint(point []byte) ([]byte, error) {
	pub, err := edwards.ParsePubKey(point)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidKey, "ed25519-kholaw: parse point")
	}
	return pub.Serialize(), nil
}

func (ed25519KholawCurve) IsOnCurve(compressed []byte) bool {
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

// SupportsPublicDerivation is true: unlike pure SLIP-0010, Kholaw defines
// a public-derivation path used by Cardano's external/change chains.
func (ed25519KholawCurve) SupportsPublicDerivation() bool { return true }

// Uncompress is not meaningful for Edwards curves.
func (ed25519KholawCurve) Uncompress([]byte) ([]byte, error) {
	return nil, errs.Wrap(errs.ErrInvalidArgument, "ed25519-kholaw: no uncompressed encoding")
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
