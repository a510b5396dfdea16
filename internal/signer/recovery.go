package signer

import (
	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/key"
)

// RecoverPublicKey reconstructs a public key from (digest, sig, recID)
// for curves supporting EVM-style recovery (spec.md §4.E paragraph 2).
// Only secp256k1 is supported: recovery is not cryptographically
// meaningful for the Edwards curves or defined by this module for P-256.
func RecoverPublicKey(curveID curve.ID, digest []byte, sig Signature, recID byte) (key.PublicKey, error) {
	if curveID != curve.Secp256k1 {
		return key.PublicKey{}, errs.Wrapf(errs.ErrUnsupportedCurve, "public key recovery not supported for %s", curveID)
	}
	return recoverSecp256k1(digest, sig, recID)
}

// RecoverPublicKeyAny tries recovery ids 0..3 and returns the first
// candidate matching expected, per spec.md §4.E: "callers that do not
// supply it iterate 0..3 and match against an expected key."
func RecoverPublicKeyAny(curveID curve.ID, digest []byte, sig Signature, expected key.PublicKey) (byte, error) {
	for recID := byte(0); recID < 4; recID++ {
		cand, err := RecoverPublicKey(curveID, digest, sig, recID)
		if err != nil {
			continue
		}
		if constantTimeEqual(cand.Compressed(), expected.Compressed()) {
			return recID, nil
		}
	}
	return 0, errs.Wrap(errs.ErrInvalidSignature, "no recovery id matched expected public key")
}
