package signer

import (
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/key"
)

// rfc6979Nonce implements the deterministic-k generation procedure from
// RFC 6979 §3.2, specialized to the case where the hash output length
// equals the curve order's byte length (true for P-256 with SHA-256, the
// only pairing this module needs it for — no corpus example implements a
// P-256 RFC 6979 signer, so this follows the RFC text directly).
func rfc6979Nonce(order *big.Int, privScalar, hash []byte) *big.Int {
	qlenBytes := (order.BitLen() + 7) / 8

	bits2octets := func(h []byte) []byte {
		z := new(big.Int).SetBytes(h)
		if z.Cmp(order) >= 0 {
			z.Sub(z, order)
		}
		return leftPad(z.Bytes(), qlenBytes)
	}

	x := leftPad(privScalar, qlenBytes)
	h1 := bits2octets(hash)

	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, 32)

	hmacK := func(key []byte, parts ...[]byte) []byte {
		mac := hmac.New(sha256.New, key)
		for _, p := range parts {
			mac.Write(p)
		}
		return mac.Sum(nil)
	}

	k = hmacK(k, v, []byte{0x00}, x, h1)
	v = hmacK(k, v)
	k = hmacK(k, v, []byte{0x01}, x, h1)
	v = hmacK(k, v)

	for {
		var t []byte
		for len(t) < qlenBytes {
			v = hmacK(k, v)
			t = append(t, v...)
		}
		candidate := new(big.Int).SetBytes(t[:qlenBytes])
		if candidate.Sign() > 0 && candidate.Cmp(order) < 0 {
			return candidate
		}
		k = hmacK(k, v, []byte{0x00})
		v = hmacK(k, v)
	}
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

func signNIST256p1(priv key.PrivateKey, digest []byte) (Signature, error) {
	c := elliptic.P256()
	order := c.Params().N
	x := new(big.Int).SetBytes(priv.RawScalar())
	e := new(big.Int).SetBytes(digest)

	for {
		k := rfc6979Nonce(order, priv.RawScalar(), digest)
		rx, _ := c.ScalarBaseMult(leftPad(k.Bytes(), 32))
		r := new(big.Int).Mod(rx, order)
		if r.Sign() == 0 {
			continue
		}
		kInv := new(big.Int).ModInverse(k, order)
		s := new(big.Int).Mul(r, x)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, order)
		if s.Sign() == 0 {
			continue
		}
		s = lowS(s, order)
		return Signature{R: leftPad(r.Bytes(), 32), S: leftPad(s.Bytes(), 32)}, nil
	}
}

func verifyNIST256p1(pub key.PublicKey, digest []byte, r, s *big.Int) bool {
	c, err := curve.ByID(curve.NIST256p1)
	if err != nil {
		return false
	}
	ec := elliptic.P256()
	order := ec.Params().N

	uncompressed, err := c.Uncompress(pub.Compressed())
	if err != nil {
		return false
	}
	x := new(big.Int).SetBytes(uncompressed[1:33])
	y := new(big.Int).SetBytes(uncompressed[33:65])

	e := new(big.Int).SetBytes(digest)
	w := new(big.Int).ModInverse(s, order)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, order)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, order)

	x1, y1 := ec.ScalarBaseMult(leftPad(u1.Bytes(), 32))
	x2, y2 := ec.ScalarMult(x, y, leftPad(u2.Bytes(), 32))
	rx, ry := ec.Add(x1, y1, x2, y2)
	if rx.Sign() == 0 && ry.Sign() == 0 {
		return false
	}
	rx.Mod(rx, order)
	return rx.Cmp(r) == 0
}
