package signer

import (
	"fmt"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/hashutil"
	"github.com/sopage/blockchain-utils-go/internal/key"
)

const ethereumPersonalPrefix = "\x19Ethereum Signed Message:\n"

// PersonalMessageHash reproduces the EVM/Tron "personal_sign" prefix
// (spec.md §4.E paragraph 3): prefix‖len_decimal(message)‖message, hashed
// with Keccak-256. Grounded on the teacher's getTSSPubKeyForEthereum
// Keccak-256-over-uncompressed-pubkey pattern in tool.go, generalized
// from address derivation to message hashing.
func PersonalMessageHash(message []byte) []byte {
	prefixed := append([]byte(fmt.Sprintf("%s%d", ethereumPersonalPrefix, len(message))), message...)
	return hashutil.Keccak256(prefixed)
}

// PersonalSign signs message with the EVM/Tron personal-message scheme:
// deterministic secp256k1 signature over PersonalMessageHash, with a
// trailing 1-byte v = 27 + recovery_id appended (spec.md §4.E paragraph
// 3). priv must be a secp256k1 key.
func PersonalSign(priv key.PrivateKey, message []byte) ([]byte, error) {
	if priv.Curve() != curve.Secp256k1 {
		return nil, errs.Wrap(errs.ErrUnsupportedCurve, "personal signing requires secp256k1")
	}
	digest := PersonalMessageHash(message)
	sig, err := Sign(priv, digest, Options{})
	if err != nil {
		return nil, err
	}
	pub, err := priv.Public()
	if err != nil {
		return nil, err
	}
	recID, err := RecoverPublicKeyAny(curve.Secp256k1, digest, sig, pub)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 65)
	out = append(out, sig.R...)
	out = append(out, sig.S...)
	out = append(out, 27+recID)
	return out, nil
}

// PersonalVerify recovers the signer's public key from a 65-byte
// (r‖s‖v) personal-message signature and reports whether it matches
// expected.
func PersonalVerify(expected key.PublicKey, message, sig []byte) (bool, error) {
	if len(sig) != 65 {
		return false, errs.Wrap(errs.ErrInvalidSignature, "personal signature must be 65 bytes")
	}
	digest := PersonalMessageHash(message)
	v := sig[64]
	if v < 27 {
		return false, errs.Wrap(errs.ErrInvalidSignature, "personal signature: v must be >= 27")
	}
	pub, err := RecoverPublicKey(curve.Secp256k1, digest, Signature{R: sig[0:32], S: sig[32:64]}, v-27)
	if err != nil {
		return false, err
	}
	return constantTimeEqual(pub.Compressed(), expected.Compressed()), nil
}

// PersonalRecover recovers the signer's public key from a 65-byte
// personal-message signature without a caller-supplied expected key.
func PersonalRecover(message, sig []byte) (key.PublicKey, error) {
	if len(sig) != 65 {
		return key.PublicKey{}, errs.Wrap(errs.ErrInvalidSignature, "personal signature must be 65 bytes")
	}
	digest := PersonalMessageHash(message)
	v := sig[64]
	if v < 27 {
		return key.PublicKey{}, errs.Wrap(errs.ErrInvalidSignature, "personal signature: v must be >= 27")
	}
	return RecoverPublicKey(curve.Secp256k1, digest, Signature{R: sig[0:32], S: sig[32:64]}, v-27)
}
