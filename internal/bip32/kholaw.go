package bip32

import (
	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/hashutil"
)

// ckdPrivKholaw implements Cardano's Byron-legacy (Kholaw) child
// derivation (spec.md §4.F: "scalar addition is performed on 32-byte
// little-endian clamped representation with specific carry handling").
// Parent.Private is the 64-byte (kL||kR) extended form. Index is encoded
// little-endian (distinct from the big-endian convention every other
// variant uses), and the HMAC domain-separation byte (0x00/0x02 for kL,
// 0x01/0x03 for the chain code) distinguishes hardened from soft
// derivation, per the original Cardano Byron-era wallet spec.
func ckdPrivKholaw(parent ExtendedKey, index Index) (ExtendedKey, error) {
	kL := parent.Private[:32]
	kR := parent.Private[32:]
	idxBytes := indexBytes(VariantEd25519Kholaw, uint32(index))

	var zData, ccData []byte
	if index.IsHardened() {
		zData = concat([]byte{0x00}, kL, kR, idxBytes)
		ccData = concat([]byte{0x01}, kL, kR, idxBytes)
	} else {
		pub := parent.Public
		zData = concat([]byte{0x02}, pub, idxBytes)
		ccData = concat([]byte{0x03}, pub, idxBytes)
	}

	Z := hashutil.HMACSHA512(parent.ChainCode[:], zData)
	cc := hashutil.HMACSHA512(parent.ChainCode[:], ccData)[32:]

	zl := Z[:28]
	zr := Z[32:64]

	childKL := add28LeftShifted(zl, kL)
	childKR := addMod2_256LE(zr, kR)

	c, err := curve.ByID(curve.Ed25519Kholaw)
	if err != nil {
		return ExtendedKey{}, err
	}
	childPub, err := c.ScalarBaseMult(childKL)
	if err != nil {
		return ExtendedKey{}, errs.Wrap(err, "kholaw: derive child public key")
	}

	extPriv := make([]byte, 64)
	copy(extPriv[:32], childKL)
	copy(extPriv[32:], childKR)

	var ccArr [32]byte
	copy(ccArr[:], cc)
	return ExtendedKey{
		Variant:           VariantEd25519Kholaw,
		Kind:              KindPrivate,
		Depth:             parent.Depth + 1,
		Index:             index,
		ParentFingerprint: fingerprint(parent),
		ChainCode:         ccArr,
		Private:           extPriv,
		Public:            childPub,
	}, nil
}

// add28LeftShifted computes kL' = 8*zl + kL as little-endian 32-byte
// integers, without reducing modulo the group order (Kholaw never
// reduces kL — clamping already bounds it to the scalar's valid shape).
func add28LeftShifted(zl, kL []byte) []byte {
	zlShifted := leftShift3LE(zl) // 8*zl, little-endian, 29 bytes for a 28-byte zl
	return addLE(zlShifted, kL, 32)
}

// addMod2_256LE adds two little-endian byte strings modulo 2^256
// (truncating carry out of the top byte), matching Cardano's kR'
// construction.
func addMod2_256LE(a, b []byte) []byte {
	return addLE(a, b, 32)
}

// leftShift3LE left-shifts a little-endian byte string by 3 bits (×8),
// preserving carry into higher bytes.
func leftShift3LE(b []byte) []byte {
	out := make([]byte, len(b)+1)
	var carry uint16
	for i, v := range b {
		cur := uint16(v)<<3 | carry
		out[i] = byte(cur)
		carry = cur >> 8
	}
	out[len(b)] = byte(carry)
	return out
}

// addLE adds two little-endian byte strings modulo 2^(8*size).
func addLE(a, b []byte, size int) []byte {
	out := make([]byte, size)
	var carry uint16
	for i := 0; i < size; i++ {
		var av, bv uint16
		if i < len(a) {
			av = uint16(a[i])
		}
		if i < len(b) {
			bv = uint16(b[i])
		}
		sum := av + bv + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ckdPubKholaw implements Kholaw's soft public derivation, used by
// Cardano's external/change address chains.
func ckdPubKholaw(parent ExtendedKey, index Index) (ExtendedKey, error) {
	if index.IsHardened() {
		return ExtendedKey{}, errs.Wrap(errs.ErrDerivationError, "hardened derivation requires a private key")
	}
	idxBytes := indexBytes(VariantEd25519Kholaw, uint32(index))
	zData := concat([]byte{0x02}, parent.Public, idxBytes)
	ccData := concat([]byte{0x03}, parent.Public, idxBytes)

	Z := hashutil.HMACSHA512(parent.ChainCode[:], zData)
	cc := hashutil.HMACSHA512(parent.ChainCode[:], ccData)[32:]
	zl := Z[:28]

	c, err := curve.ByID(curve.Ed25519Kholaw)
	if err != nil {
		return ExtendedKey{}, err
	}
	deltaPoint, err := c.ScalarBaseMult(add28LeftShifted(zl, make([]byte, 32)))
	if err != nil {
		return ExtendedKey{}, err
	}
	childPub, err := c.AddPoints(parent.Public, deltaPoint)
	if err != nil {
		return ExtendedKey{}, err
	}

	var ccArr [32]byte
	copy(ccArr[:], cc)
	return ExtendedKey{
		Variant:           VariantEd25519Kholaw,
		Kind:              KindPublic,
		Depth:             parent.Depth + 1,
		Index:             index,
		ParentFingerprint: fingerprint(parent),
		ChainCode:         ccArr,
		Public:            childPub,
	}, nil
}
