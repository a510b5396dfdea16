package signer

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScalar(n byte) []byte {
	s := make([]byte, 32)
	s[31] = n
	return s
}

func TestSignVerifyRoundtripSecp256k1(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.Secp256k1, testScalar(123))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("message"))
	sig, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)

	ok, err := Verify(pub, digest[:], sig, Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignVerifyRoundtripNIST256p1(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.NIST256p1, testScalar(55))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("another message"))
	sig, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)

	ok, err := Verify(pub, digest[:], sig, Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignIsDeterministic(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.Secp256k1, testScalar(9))
	require.NoError(t, err)
	digest := sha256.Sum256([]byte("deterministic"))

	sig1, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)
	sig2, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)

	assert.True(t, bytes.Equal(sig1.Bytes(), sig2.Bytes()))
}

func TestSignatureIsLowS(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.Secp256k1, testScalar(17))
	require.NoError(t, err)
	digest := sha256.Sum256([]byte("low-s check"))

	sig, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)

	c, _ := curve.ByID(curve.Secp256k1)
	s := new(big.Int).SetBytes(sig.S)
	half := new(big.Int).Rsh(c.Order(), 1)
	assert.True(t, s.Cmp(half) <= 0)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.Secp256k1, testScalar(31))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("tamper test"))
	sig, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)

	tampered := sig
	tamperedS := make([]byte, len(sig.S))
	copy(tamperedS, sig.S)
	tamperedS[len(tamperedS)-1] ^= 0xFF
	tampered.S = tamperedS

	ok, err := Verify(pub, digest[:], tampered, Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecoverPublicKeyAnyFindsMatch(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.Secp256k1, testScalar(64))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("recoverable"))
	sig, err := Sign(priv, digest[:], Options{})
	require.NoError(t, err)

	recID, err := RecoverPublicKeyAny(curve.Secp256k1, digest[:], sig, pub)
	require.NoError(t, err)

	recovered, err := RecoverPublicKey(curve.Secp256k1, digest[:], sig, recID)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(recovered.Compressed(), pub.Compressed()))
}

func TestPersonalSignVerifyRoundtrip(t *testing.T) {
	priv, err := key.PrivateFromBytes(curve.Secp256k1, testScalar(200))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	msg := []byte("hello from a wallet")
	sig, err := PersonalSign(priv, msg)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	ok, err := PersonalVerify(pub, msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	recovered, err := PersonalRecover(msg, sig)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(recovered.Compressed(), pub.Compressed()))
}

func TestParseSignatureRejectsOutOfRange(t *testing.T) {
	c, _ := curve.ByID(curve.Secp256k1)
	zero := make([]byte, 2*c.ScalarSize())
	_, err := ParseSignature(c, zero)
	assert.Error(t, err)
}
