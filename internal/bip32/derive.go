package bip32

import (
	"encoding/binary"
	"math/big"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/hashutil"
)

const maxIndexRetries = 1024

// CKDPriv derives a child private-holding ExtendedKey from parent at
// index (spec.md §4.F "Child derivation"). parent must be KindPrivate.
func CKDPriv(parent ExtendedKey, index Index) (ExtendedKey, error) {
	if parent.Kind != KindPrivate {
		return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "ckdPriv requires a private-holding parent")
	}
	if parent.Depth == MaxDepth {
		return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "maximum derivation depth reached")
	}

	switch parent.Variant {
	case VariantSecp256k1, VariantNIST256p1:
		return ckdPrivWeierstrass(parent, index)
	case VariantEd25519SLIP10:
		return ckdPrivSLIP10Edwards(parent, index)
	case VariantEd25519Kholaw:
		return ckdPrivKholaw(parent, index)
	default:
		return ExtendedKey{}, errs.Wrapf(errs.ErrUnsupportedCurve, "variant %d", int(parent.Variant))
	}
}

// CKDPub derives a child public-only ExtendedKey from a public parent
// (spec.md §4.F "ckdPub"). Hardened indices always fail; variants that
// forbid public derivation entirely (pure ed25519 SLIP-0010) always fail.
func CKDPub(parent ExtendedKey, index Index) (ExtendedKey, error) {
	if index.IsHardened() {
		return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "hardened derivation requires a private key")
	}
	if !parent.Variant.supportsPublicDerivation() {
		return ExtendedKey{}, errs.Wrapf(errs.ErrDerivationError, "%s does not support public derivation", parent.Variant.CurveID())
	}
	if parent.Depth == MaxDepth {
		return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "maximum derivation depth reached")
	}
	if parent.Variant == VariantEd25519Kholaw {
		return ckdPubKholaw(parent, index)
	}

	c, err := curve.ByID(parent.Variant.CurveID())
	if err != nil {
		return ExtendedKey{}, err
	}

	parentFP := fingerprint(parent)
	for attempt := uint32(0); attempt < maxIndexRetries; attempt++ {
		idx := uint32(index) + attempt
		data := append(append([]byte{}, parent.Public...), indexBytes(parent.Variant, idx)...)
		I := hashutil.HMACSHA512(parent.ChainCode[:], data)
		il, ir := I[:32], I[32:]

		delta := new(big.Int).SetBytes(il)
		if delta.Cmp(c.Order()) >= 0 {
			continue
		}
		deltaPoint, err := c.ScalarBaseMult(padScalar(parent.Variant, delta))
		if err != nil {
			continue
		}
		childPub, err := c.AddPoints(parent.Public, deltaPoint)
		if err != nil {
			continue
		}

		var cc [32]byte
		copy(cc[:], ir)
		return ExtendedKey{
			Variant:           parent.Variant,
			Kind:              KindPublic,
			Depth:             parent.Depth + 1,
			Index:             Index(idx),
			ParentFingerprint: parentFP,
			ChainCode:         cc,
			Public:            childPub,
		}, nil
	}
	return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "exhausted retries for degenerate HMAC output")
}

// ckdPrivWeierstrass implements the BIP-32/SLIP-0010 Weierstrass rule
// (spec.md §4.F): child_scalar = (Il + parent_scalar) mod n, retrying at
// the next index if Il >= n or child_scalar == 0.
func ckdPrivWeierstrass(parent ExtendedKey, index Index) (ExtendedKey, error) {
	c, err := curve.ByID(parent.Variant.CurveID())
	if err != nil {
		return ExtendedKey{}, err
	}
	order := c.Order()
	parentScalar := new(big.Int).SetBytes(parent.Private)
	parentFP := fingerprint(parent)

	for attempt := uint32(0); attempt < maxIndexRetries; attempt++ {
		idx := uint32(index) + attempt
		data := hmacInputWeierstrass(parent, idx)
		I := hashutil.HMACSHA512(parent.ChainCode[:], data)
		il, ir := I[:32], I[32:]

		delta := new(big.Int).SetBytes(il)
		if delta.Cmp(order) >= 0 {
			continue
		}
		childScalar := new(big.Int).Add(parentScalar, delta)
		childScalar.Mod(childScalar, order)
		if childScalar.Sign() == 0 {
			continue
		}

		childPriv := curve.LeftPad32(childScalar.Bytes())
		childPub, err := c.ScalarBaseMult(childPriv)
		if err != nil {
			return ExtendedKey{}, errs.Wrap(err, "derive child public key")
		}
		var cc [32]byte
		copy(cc[:], ir)
		return ExtendedKey{
			Variant:           parent.Variant,
			Kind:              KindPrivate,
			Depth:             parent.Depth + 1,
			Index:             Index(idx),
			ParentFingerprint: parentFP,
			ChainCode:         cc,
			Private:           childPriv,
			Public:            childPub,
		}, nil
	}
	return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "exhausted retries for degenerate HMAC output")
}

func hmacInputWeierstrass(parent ExtendedKey, idx uint32) []byte {
	idxBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(idxBytes, idx)
	if Index(idx).IsHardened() {
		data := make([]byte, 0, 1+len(parent.Private)+4)
		data = append(data, 0x00)
		data = append(data, parent.Private...)
		data = append(data, idxBytes...)
		return data
	}
	data := make([]byte, 0, len(parent.Public)+4)
	data = append(data, parent.Public...)
	data = append(data, idxBytes...)
	return data
}

// ckdPrivSLIP10Edwards implements SLIP-0010's ed25519 child derivation:
// hardened-only (ed25519 SLIP-0010 supports no public derivation, and by
// extension no non-hardened private derivation either, since that would
// require computing an HMAC input from a public key this scheme never
// derives safely). Il becomes the child key directly; Ir becomes the new
// chain code — there is no scalar addition with the parent, unlike the
// Weierstrass rule (SLIP-0010 §"Private parent key → private child key").
func ckdPrivSLIP10Edwards(parent ExtendedKey, index Index) (ExtendedKey, error) {
	if !index.IsHardened() {
		return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "ed25519 slip-0010 only supports hardened derivation")
	}
	c, err := curve.ByID(parent.Variant.CurveID())
	if err != nil {
		return ExtendedKey{}, err
	}
	idxBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(idxBytes, uint32(index))
	data := make([]byte, 0, 1+len(parent.Private)+4)
	data = append(data, 0x00)
	data = append(data, parent.Private...)
	data = append(data, idxBytes...)

	I := hashutil.HMACSHA512(parent.ChainCode[:], data)
	il, ir := I[:32], I[32:]
	childPub, err := c.ScalarBaseMult(il)
	if err != nil {
		return ExtendedKey{}, errs.Wrap(err, "derive child public key")
	}
	var cc [32]byte
	copy(cc[:], ir)
	return ExtendedKey{
		Variant:           parent.Variant,
		Kind:              KindPrivate,
		Depth:             parent.Depth + 1,
		Index:             index,
		ParentFingerprint: fingerprint(parent),
		ChainCode:         cc,
		Private:           append([]byte(nil), il...),
		Public:            childPub,
	}, nil
}

func indexBytes(v Variant, idx uint32) []byte {
	b := make([]byte, 4)
	if v == VariantEd25519Kholaw {
		binary.LittleEndian.PutUint32(b, idx)
	} else {
		binary.BigEndian.PutUint32(b, idx)
	}
	return b
}

func padScalar(v Variant, s *big.Int) []byte {
	return curve.LeftPad32(s.Bytes())
}

// fingerprint computes the first 4 bytes of the hash identifying parent
// as a BIP-32 parent (spec.md §3/§4.F). Weierstrass curves use
// RIPEMD160(SHA256(compressed_pubkey)) (Hash160); Edwards curves use the
// Keccak-256 analog since they have no native Hash160 convention in the
// reference corpus.
func fingerprint(k ExtendedKey) [4]byte {
	c, err := curve.ByID(k.Variant.CurveID())
	if err != nil {
		return [4]byte{}
	}
	if c.Family() == curve.FamilyWeierstrass {
		return hashutil.Fingerprint4(k.Public)
	}
	h := hashutil.Keccak256(k.Public)
	var out [4]byte
	copy(out[:], h[:4])
	return out
}

// Fingerprint exposes fingerprint computation for a key as the public
// helper spec.md §3 calls out as first-class (supplemented per
// SPEC_FULL.md §10).
func Fingerprint(k ExtendedKey) [4]byte {
	return fingerprint(k)
}
