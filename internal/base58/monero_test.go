package base58

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundtripFullBlock(t *testing.T) {
	data := make([]byte, 8)
	for i := range data {
		data[i] = byte(i * 17)
	}
	encoded := Encode(data)
	assert.Len(t, encoded, fullEncodedSize)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, decoded))
}

func TestEncodeDecodeRoundtripMultiBlockWithTail(t *testing.T) {
	data := make([]byte, 69) // Monero standard-address payload+checksum length
	for i := range data {
		data[i] = byte(i)
	}
	encoded := Encode(data)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, decoded))
}

func TestEncodeDecodeEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	decoded, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	_, err := Decode("10") // 2-char tail is a valid length, so the '0' is what fails
	assert.Error(t, err, "'0' is not in the base58 alphabet")
}

func TestDecodeRejectsInvalidTailLength(t *testing.T) {
	_, err := Decode("a") // 1-char tail has no valid raw-byte mapping
	assert.Error(t, err)
}
