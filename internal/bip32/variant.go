package bip32

import "github.com/sopage/blockchain-utils-go/internal/curve"

// Variant is the closed set of derivator variants the engine dispatches
// over (spec.md §4.F: "Variants: {secp256k1, nist256p1, ed25519-slip10,
// ed25519-kholaw, cardano-byron-legacy}"). Cardano Byron legacy itself is
// treated as an external-collaborator adapter per spec.md §1's framing of
// Substrate/Tron/SS58 as thin chain-specific wrappers over this core; see
// DESIGN.md.
type Variant int

const (
	VariantSecp256k1 Variant = iota
	VariantNIST256p1
	VariantEd25519SLIP10
	VariantEd25519Kholaw
)

// CurveID returns the curve.ID backing this variant.
func (v Variant) CurveID() curve.ID {
	switch v {
	case VariantSecp256k1:
		return curve.Secp256k1
	case VariantNIST256p1:
		return curve.NIST256p1
	case VariantEd25519SLIP10:
		return curve.Ed25519
	case VariantEd25519Kholaw:
		return curve.Ed25519Kholaw
	default:
		return curve.Ed25519 // unreachable for a closed, validated set
	}
}

// masterKeyConstant is the HMAC key used for from_seed (spec.md §4.F):
// "Bitcoin seed" for Weierstrass curves per BIP-32, curve-specific
// constants for the ed25519 variants per SLIP-0010.
func (v Variant) masterKeyConstant() []byte {
	switch v {
	case VariantSecp256k1:
		return []byte("Bitcoin seed")
	case VariantNIST256p1:
		return []byte("Nist256p1 seed")
	case VariantEd25519SLIP10:
		return []byte("ed25519 seed")
	case VariantEd25519Kholaw:
		return []byte("ed25519 seed")
	default:
		return nil
	}
}

// supportsPublicDerivation mirrors curve.Curve.SupportsPublicDerivation
// for the derivator as a whole: false only for pure SLIP-0010 ed25519.
func (v Variant) supportsPublicDerivation() bool {
	return v != VariantEd25519SLIP10
}

// isEdwardsFamily reports whether this variant is one of the two
// ed25519-based variants (SLIP-0010 or Kholaw), grounded on the teacher's
// derive.go special-case for CurveEdwards25519.
func (v Variant) isEdwardsFamily() bool {
	return v == VariantEd25519SLIP10 || v == VariantEd25519Kholaw
}
