// Package signer implements deterministic ECDSA signing and verification
// (spec.md §4.E): RFC 6979 nonce generation, low-S canonicalization, a
// fixed-width (r, s) encoding, a self-verify guard against implementation
// bugs, and EVM-style public-key recovery. secp256k1 delegates the
// primitive signing math to github.com/decred/dcrd/dcrec/secp256k1/v4/
// ecdsa (already RFC 6979 + low-S compliant), grounded on the
// SignMessage/SignLegacy pattern used across the reference corpus
// (celestiaorg-popsigner, nspcc-dev-neo-go). NIST P-256 has no such
// library anywhere in the corpus, so its RFC 6979 nonce generation is
// hand-rolled over stdlib crypto/elliptic in rfc6979.go.
package signer

import (
	"crypto/sha256"
	"crypto/subtle"
	"math/big"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/key"
)

// Signature is a fixed-width (r, s) pair, each padded to the curve's
// scalar length, per spec.md §3.
type Signature struct {
	R, S []byte
}

// Bytes returns the big-endian concatenation r||s.
func (s Signature) Bytes() []byte {
	out := make([]byte, 0, len(s.R)+len(s.S))
	out = append(out, s.R...)
	out = append(out, s.S...)
	return out
}

// ParseSignature splits a fixed-width r||s byte string for curve c.
func ParseSignature(c curve.Curve, b []byte) (Signature, error) {
	n := c.ScalarSize()
	if len(b) != 2*n {
		return Signature{}, errs.Wrapf(errs.ErrInvalidSignature, "%s: signature must be %d bytes, got %d", c.Name(), 2*n, len(b))
	}
	r := new(big.Int).SetBytes(b[:n])
	s := new(big.Int).SetBytes(b[n:])
	if r.Sign() <= 0 || r.Cmp(c.Order()) >= 0 || s.Sign() <= 0 || s.Cmp(c.Order()) >= 0 {
		return Signature{}, errs.Wrap(errs.ErrInvalidSignature, c.Name()+": r or s out of range")
	}
	cp := func(b []byte) []byte { out := make([]byte, len(b)); copy(out, b); return out }
	return Signature{R: cp(b[:n]), S: cp(b[n:])}, nil
}

// Options controls digest pre-processing shared by Sign and Verify.
type Options struct {
	// HashFirst, when true, replaces the digest with SHA-256(digest)
	// before use (spec.md §4.E step 1).
	HashFirst bool
}

func prepareDigest(c curve.Curve, digest []byte, opts Options) ([]byte, error) {
	d := digest
	if opts.HashFirst {
		h := sha256.Sum256(d)
		d = h[:]
	}
	if len(d) != c.ScalarSize() {
		return nil, errs.Wrapf(errs.ErrInvalidDigest, "%s: digest must be %d bytes, got %d", c.Name(), c.ScalarSize(), len(d))
	}
	return d, nil
}

// Sign produces a deterministic, low-S-normalized signature over digest
// using priv, self-verifying the result before returning it (spec.md
// §4.E step 5: a self-verify failure indicates an implementation bug,
// not a caller error, so it is returned wrapped in
// ErrSignatureVerificationFailed rather than any input-validation kind).
func Sign(priv key.PrivateKey, digest []byte, opts Options) (Signature, error) {
	c, err := curve.ByID(priv.Curve())
	if err != nil {
		return Signature{}, err
	}
	d, err := prepareDigest(c, digest, opts)
	if err != nil {
		return Signature{}, err
	}

	var sig Signature
	switch priv.Curve() {
	case curve.Secp256k1:
		sig, err = signSecp256k1(priv, d)
	case curve.NIST256p1:
		sig, err = signNIST256p1(priv, d)
	default:
		return Signature{}, errs.Wrapf(errs.ErrUnsupportedCurve, "signing not supported for %s", c.Name())
	}
	if err != nil {
		return Signature{}, err
	}

	pub, err := priv.Public()
	if err != nil {
		return Signature{}, err
	}
	ok, err := Verify(pub, digest, sig, opts)
	if err != nil || !ok {
		return Signature{}, errs.Wrap(errs.ErrSignatureVerificationFailed, "self-verify failed after signing")
	}
	return sig, nil
}

// Verify checks sig against digest under pub. It returns (false, nil) for
// a cryptographically invalid signature and only returns a non-nil error
// for malformed input (spec.md §4.E: "never throws for cryptographic
// failure").
func Verify(pub key.PublicKey, digest []byte, sig Signature, opts Options) (bool, error) {
	c, err := curve.ByID(pub.Curve())
	if err != nil {
		return false, err
	}
	d, err := prepareDigest(c, digest, opts)
	if err != nil {
		return false, err
	}
	n := c.ScalarSize()
	if len(sig.R) != n || len(sig.S) != n {
		return false, errs.Wrap(errs.ErrInvalidSignature, "malformed signature length")
	}
	r := new(big.Int).SetBytes(sig.R)
	s := new(big.Int).SetBytes(sig.S)
	if r.Sign() <= 0 || r.Cmp(c.Order()) >= 0 || s.Sign() <= 0 || s.Cmp(c.Order()) >= 0 {
		return false, nil
	}

	switch pub.Curve() {
	case curve.Secp256k1:
		return verifySecp256k1(pub, d, r, s), nil
	case curve.NIST256p1:
		return verifyNIST256p1(pub, d, r, s), nil
	default:
		return false, errs.Wrapf(errs.ErrUnsupportedCurve, "verification not supported for %s", c.Name())
	}
}

// lowS returns s if s <= order/2, else order-s (spec.md §4.E step 4).
func lowS(s, order *big.Int) *big.Int {
	half := new(big.Int).Rsh(order, 1)
	if s.Cmp(half) > 0 {
		return new(big.Int).Sub(order, s)
	}
	return s
}

func constantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
