package bip32

import (
	"math/big"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/hashutil"
)

// FromSeed derives the master ExtendedKey for variant from seed bytes
// (spec.md §4.F "Master generation"). Depth, index and parent fingerprint
// are all zero for a master key.
func FromSeed(variant Variant, seed []byte) (ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return ExtendedKey{}, errs.Wrapf(errs.ErrInvalidArgument, "seed must be %d..%d bytes, got %d", MinSeedBytes, MaxSeedBytes, len(seed))
	}

	switch variant {
	case VariantSecp256k1, VariantNIST256p1:
		return fromSeedWeierstrass(variant, seed)
	case VariantEd25519SLIP10:
		return fromSeedSLIP10Edwards(variant, seed)
	case VariantEd25519Kholaw:
		return fromSeedKholaw(seed)
	default:
		return ExtendedKey{}, errs.Wrapf(errs.ErrUnsupportedCurve, "variant %d", int(variant))
	}
}

// fromSeedWeierstrass implements BIP-32 master-key generation for
// secp256k1/NIST256p1: I = HMAC-SHA512(const, seed); Il must be in
// [1,n-1], else rehash with Il as the new seed data, per BIP-32's
// documented retry (spec.md §4.F, §7 DerivationError note).
func fromSeedWeierstrass(variant Variant, seed []byte) (ExtendedKey, error) {
	c, err := curve.ByID(variant.CurveID())
	if err != nil {
		return ExtendedKey{}, err
	}
	order := c.Order()
	data := seed
	const maxRetries = 1024
	for attempt := 0; attempt < maxRetries; attempt++ {
		I := hashutil.HMACSHA512(variant.masterKeyConstant(), data)
		il, ir := I[:32], I[32:]
		scalar := new(big.Int).SetBytes(il)
		if scalar.Sign() != 0 && scalar.Cmp(order) < 0 {
			pub, err := c.ScalarBaseMult(il)
			if err != nil {
				return ExtendedKey{}, errs.Wrap(err, "master key: derive public key")
			}
			var cc [32]byte
			copy(cc[:], ir)
			return ExtendedKey{
				Variant:   variant,
				Kind:      KindPrivate,
				Depth:     0,
				Index:     0,
				ChainCode: cc,
				Private:   append([]byte(nil), il...),
				Public:    pub,
			}, nil
		}
		data = il
	}
	return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "master key: exhausted retries for degenerate HMAC output")
}

// fromSeedSLIP10Edwards implements SLIP-0010 ed25519 master generation:
// I = HMAC-SHA512("ed25519 seed", seed); kL=Il, chain_code=Ir, no
// validity retry (every 32-byte string is usable as an ed25519 SLIP-0010
// scalar; there is no public derivation to protect against a zero/over-
// order scalar the way Weierstrass curves must).
func fromSeedSLIP10Edwards(variant Variant, seed []byte) (ExtendedKey, error) {
	c, err := curve.ByID(variant.CurveID())
	if err != nil {
		return ExtendedKey{}, err
	}
	I := hashutil.HMACSHA512(variant.masterKeyConstant(), seed)
	il, ir := I[:32], I[32:]
	pub, err := c.ScalarBaseMult(il)
	if err != nil {
		return ExtendedKey{}, errs.Wrap(err, "master key: derive public key")
	}
	var cc [32]byte
	copy(cc[:], ir)
	return ExtendedKey{
		Variant:   variant,
		Kind:      KindPrivate,
		ChainCode: cc,
		Private:   append([]byte(nil), il...),
		Public:    pub,
	}, nil
}

// fromSeedKholaw implements Cardano's Byron-legacy (Kholaw) master-key
// generation (spec.md §4.F): HMAC-SHA512 the seed keyed with the
// variant's master-key constant, re-hashing the previous output until bit
// 5 of the third byte of the left half is clear, then clamp (clear bits
// 0,1,2 of byte 0; clear bit 7 and set bit 6 of byte 31) and split the
// output into (kL, kR). The chain code is the right half of a separate
// HMAC-SHA512 of the seed keyed with 0x01‖seed. No corpus example implements Cardano derivation; this
// follows spec.md's literal description (see DESIGN.md Open Question
// log).
func fromSeedKholaw(seed []byte) (ExtendedKey, error) {
	data := seed
	var I []byte
	for {
		I = hashutil.HMACSHA512(VariantEd25519Kholaw.masterKeyConstant(), data)
		if I[2]&0x20 == 0 {
			break
		}
		data = I
	}
	kL := make([]byte, 32)
	copy(kL, I[:32])
	kR := make([]byte, 32)
	copy(kR, I[32:64])

	kL[0] &= 0xF8         // clear bits 0,1,2
	kL[31] &= 0x7F         // clear bit 7 (per Ed25519-BIP32 clamp)
	kL[31] |= 0x40         // set bit 6

	chainCode := hashutil.HMACSHA512(append([]byte{0x01}, seed...), seed)[32:]

	c, err := curve.ByID(curve.Ed25519Kholaw)
	if err != nil {
		return ExtendedKey{}, err
	}
	pub, err := c.ScalarBaseMult(kL)
	if err != nil {
		return ExtendedKey{}, errs.Wrap(err, "kholaw master key: derive public key")
	}

	extPriv := make([]byte, 64)
	copy(extPriv[:32], kL)
	copy(extPriv[32:], kR)

	var cc [32]byte
	copy(cc[:], chainCode)
	return ExtendedKey{
		Variant:   VariantEd25519Kholaw,
		Kind:      KindPrivate,
		ChainCode: cc,
		Private:   extPriv,
		Public:    pub,
	}, nil
}
