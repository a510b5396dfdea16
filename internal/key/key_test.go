package key

import (
	"bytes"
	"testing"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarOf(n byte) []byte {
	s := make([]byte, 32)
	s[31] = n
	return s
}

func TestPrivateFromBytesRejectsWrongLength(t *testing.T) {
	_, err := PrivateFromBytes(curve.Secp256k1, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestPrivateFromBytesRejectsZeroScalar(t *testing.T) {
	_, err := PrivateFromBytes(curve.Secp256k1, make([]byte, 32))
	assert.Error(t, err)
}

func TestPublicDerivationIsDeterministicAndAgreesWithFreeFunction(t *testing.T) {
	priv, err := PrivateFromBytes(curve.Secp256k1, scalarOf(42))
	require.NoError(t, err)

	pub1, err := priv.Public()
	require.NoError(t, err)
	pub2, err := PublicFromPrivate(priv)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(pub1.Compressed(), pub2.Compressed()))
}

func TestPublicFromBytesRejectsIdentity(t *testing.T) {
	identity := make([]byte, 33)
	identity[0] = 0x02
	_, err := PublicFromBytes(curve.Secp256k1, identity)
	assert.Error(t, err)
}

func TestPublicFromBytesAcceptsCompressedAndUncompressed(t *testing.T) {
	priv, err := PrivateFromBytes(curve.Secp256k1, scalarOf(9))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	fromCompressed, err := PublicFromBytes(curve.Secp256k1, pub.Compressed())
	require.NoError(t, err)

	uncompressed, err := pub.Uncompressed()
	require.NoError(t, err)
	fromUncompressed, err := PublicFromBytes(curve.Secp256k1, uncompressed)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(fromCompressed.Compressed(), fromUncompressed.Compressed()))
}

func TestEd25519UncompressedEqualsCompressed(t *testing.T) {
	priv, err := PrivateFromBytes(curve.Ed25519, scalarOf(3))
	require.NoError(t, err)
	pub, err := priv.Public()
	require.NoError(t, err)

	uncompressed, err := pub.Uncompressed()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(uncompressed, pub.Compressed()))
}
