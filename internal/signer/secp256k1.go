package signer

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/key"
)

func signSecp256k1(priv key.PrivateKey, digest []byte) (Signature, error) {
	sk := secp256k1.PrivKeyFromBytes(priv.RawScalar())
	sig := dcecdsa.Sign(sk, digest)
	r := sig.R()
	s := sig.S()
	var rBytes, sBytes [32]byte
	r.PutBytesUnchecked(rBytes[:])
	s.PutBytesUnchecked(sBytes[:])
	return Signature{R: rBytes[:], S: sBytes[:]}, nil
}

func verifySecp256k1(pub key.PublicKey, digest []byte, r, s *big.Int) bool {
	pk, err := secp256k1.ParsePubKey(pub.Compressed())
	if err != nil {
		return false
	}
	var rScalar, sScalar secp256k1.ModNScalar
	var rBytes, sBytes [32]byte
	r.FillBytes(rBytes[:])
	s.FillBytes(sBytes[:])
	if rScalar.SetBytes(&rBytes) != 0 || sScalar.SetBytes(&sBytes) != 0 {
		return false
	}
	sig := dcecdsa.NewSignature(&rScalar, &sScalar)
	return sig.Verify(digest, pk)
}

// recoverSecp256k1 reconstructs a public key given digest, sig, and a
// recovery id in [0,3], per spec.md §4.E's recovery paragraph. Grounded
// on the V||R||S compact-signature layout used by
// celestiaorg-popsigner's verifyRecovery/RecoverPubKeyFromSignature and
// nspcc-dev-neo-go's ecdsa.RecoverCompact call.
func recoverSecp256k1(digest []byte, sig Signature, recID byte) (key.PublicKey, error) {
	if recID > 3 {
		return key.PublicKey{}, errs.Wrap(errs.ErrInvalidSignature, "secp256k1: recovery id out of range")
	}
	compact := make([]byte, 65)
	compact[0] = 27 + recID
	copy(compact[1:33], sig.R)
	copy(compact[33:65], sig.S)
	pk, _, err := dcecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return key.PublicKey{}, errs.Wrap(errs.ErrInvalidSignature, "secp256k1: recovery failed")
	}
	return key.PublicFromBytes(curve.Secp256k1, pk.SerializeCompressed())
}
