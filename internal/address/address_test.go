package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58CheckEncodeDecodeRoundtrip(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x02
	for i := 1; i < 33; i++ {
		pubKey[i] = byte(i)
	}

	addr, err := (Base58CheckCodec{}).Encode(pubKey, BitcoinMainnetP2PKH)
	require.NoError(t, err)
	assert.NotEmpty(t, addr)

	decoded, err := (Base58CheckCodec{}).Decode(addr, BitcoinMainnetP2PKH)
	require.NoError(t, err)
	assert.Len(t, decoded, 20, "decoded payload should be the 20-byte hash160")
}

func TestBase58CheckDecodeRejectsWrongNetwork(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x03
	addr, err := (Base58CheckCodec{}).Encode(pubKey, BitcoinMainnetP2PKH)
	require.NoError(t, err)

	_, err = (Base58CheckCodec{}).Decode(addr, BitcoinTestnetP2PKH)
	assert.Error(t, err)
}

func TestBase58CheckDecodeRejectsCorruptedChecksum(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x02
	addr, err := (Base58CheckCodec{}).Encode(pubKey, BitcoinMainnetP2PKH)
	require.NoError(t, err)

	corrupted := addr[:len(addr)-1] + "9"
	_, err = (Base58CheckCodec{}).Decode(corrupted, BitcoinMainnetP2PKH)
	assert.Error(t, err)
}

func TestEncodeXRPLPrependsR(t *testing.T) {
	pubKey := make([]byte, 33)
	pubKey[0] = 0x02
	addr, err := EncodeXRPL(pubKey)
	require.NoError(t, err)
	assert.Equal(t, byte('r'), addr[0])
}

func TestRequireNetVersion(t *testing.T) {
	_, err := (Base58CheckCodec{}).Encode([]byte{1, 2, 3}, Params{})
	assert.Error(t, err)
}
