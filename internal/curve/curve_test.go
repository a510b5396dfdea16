package curve

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarOf(n byte) []byte {
	s := make([]byte, 32)
	s[31] = n
	return s
}

func TestByIDAllVariants(t *testing.T) {
	for _, id := range []ID{Secp256k1, NIST256p1, Ed25519, Ed25519Kholaw} {
		c, err := ByID(id)
		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
	}
}

func TestByIDUnknown(t *testing.T) {
	_, err := ByID(ID(99))
	assert.Error(t, err)
}

func TestSecp256k1ScalarBaseMultAndCompressRoundtrip(t *testing.T) {
	c := Secp256k1Curve
	pub, err := c.ScalarBaseMult(scalarOf(7))
	require.NoError(t, err)
	require.Len(t, pub, 33)
	assert.True(t, c.IsOnCurve(pub))

	uncompressed, err := c.Uncompress(pub)
	require.NoError(t, err)
	require.Len(t, uncompressed, 65)
	assert.Equal(t, byte(0x04), uncompressed[0])

	recompressed, err := c.CompressPoint(uncompressed)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(pub, recompressed))
}

func TestNIST256p1ScalarBaseMultAndCompressRoundtrip(t *testing.T) {
	c := NIST256p1Curve
	pub, err := c.ScalarBaseMult(scalarOf(11))
	require.NoError(t, err)
	require.Len(t, pub, 33)
	assert.True(t, c.IsOnCurve(pub))

	uncompressed, err := c.Uncompress(pub)
	require.NoError(t, err)
	require.Len(t, uncompressed, 65)

	recompressed, err := c.CompressPoint(uncompressed)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(pub, recompressed))
}

func TestEd25519ScalarBaseMult(t *testing.T) {
	c := Ed25519Curve
	pub, err := c.ScalarBaseMult(scalarOf(5))
	require.NoError(t, err)
	require.Len(t, pub, 32)
	assert.True(t, c.IsOnCurve(pub))

	_, err = c.Uncompress(pub)
	assert.Error(t, err, "ed25519 has no uncompressed encoding")
}

func TestEd25519KholawSupportsPublicDerivation(t *testing.T) {
	assert.True(t, Ed25519KholawCurve.SupportsPublicDerivation())
	assert.False(t, Ed25519Curve.SupportsPublicDerivation())
}

func TestValidateScalarRejectsZeroAndOverflow(t *testing.T) {
	c := Secp256k1Curve
	err := ValidateScalar(c, make([]byte, 32))
	assert.Error(t, err, "zero scalar must be rejected")

	order := c.Order().Bytes()
	err = ValidateScalar(c, LeftPad32(order))
	assert.Error(t, err, "scalar == order must be rejected")

	err = ValidateScalar(c, scalarOf(1))
	assert.NoError(t, err)
}

func TestLeftPad32(t *testing.T) {
	assert.Equal(t, 32, len(LeftPad32([]byte{1, 2, 3})))
	assert.Equal(t, byte(3), LeftPad32([]byte{1, 2, 3})[31])

	overlong := make([]byte, 40)
	overlong[39] = 9
	assert.Equal(t, byte(9), LeftPad32(overlong)[31])
}
