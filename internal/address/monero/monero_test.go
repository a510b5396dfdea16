package monero

import (
	"bytes"
	"testing"

	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKeyPair(t *testing.T) (spend, view []byte) {
	t.Helper()
	c, err := curve.ByID(curve.Ed25519)
	require.NoError(t, err)
	spendScalar := make([]byte, 32)
	spendScalar[31] = 1
	viewScalar := make([]byte, 32)
	viewScalar[31] = 2
	spend, err = c.ScalarBaseMult(spendScalar)
	require.NoError(t, err)
	view, err = c.ScalarBaseMult(viewScalar)
	require.NoError(t, err)
	return spend, view
}

func TestStandardAddressEncodeDecodeRoundtrip(t *testing.T) {
	spend, view := validKeyPair(t)
	params := Params{NetVersion: 0x12}

	addr, err := (Codec{}).Encode(append(append([]byte{}, spend...), view...), params)
	require.NoError(t, err)
	assert.Len(t, addr, 95, "standard monero address is 95 chars per spec")

	decoded, err := (Codec{}).Decode(addr, params)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(decoded[:32], spend))
	assert.True(t, bytes.Equal(decoded[32:], view))
}

func TestIntegratedAddressEncodeDecodeRoundtrip(t *testing.T) {
	spend, view := validKeyPair(t)
	paymentID := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	params := Params{NetVersion: 0x13, PaymentID: paymentID}

	addr, err := (Codec{}).Encode(append(append([]byte{}, spend...), view...), params)
	require.NoError(t, err)
	assert.Len(t, addr, 106, "integrated monero address is 106 chars per spec")

	decoded, err := (Codec{}).Decode(addr, params)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(decoded[:32], spend))
	assert.True(t, bytes.Equal(decoded[32:], view))
}

func TestIntegratedDecodeRejectsMismatchedPaymentID(t *testing.T) {
	spend, view := validKeyPair(t)
	params := Params{NetVersion: 0x13, PaymentID: []byte{1, 2, 3, 4, 5, 6, 7, 8}}

	addr, err := (Codec{}).Encode(append(append([]byte{}, spend...), view...), params)
	require.NoError(t, err)

	wrongParams := Params{NetVersion: 0x13, PaymentID: []byte{8, 7, 6, 5, 4, 3, 2, 1}}
	_, err = (Codec{}).Decode(addr, wrongParams)
	assert.Error(t, err)
}

func TestDecodeRejectsWrongNetVersion(t *testing.T) {
	spend, view := validKeyPair(t)
	params := Params{NetVersion: 0x12}
	addr, err := (Codec{}).Encode(append(append([]byte{}, spend...), view...), params)
	require.NoError(t, err)

	_, err = (Codec{}).Decode(addr, Params{NetVersion: 0x99})
	assert.Error(t, err)
}

func TestEncodeRejectsOffCurveKeys(t *testing.T) {
	bad := make([]byte, 64)
	for i := range bad {
		bad[i] = 0xFF
	}
	_, err := (Codec{}).Encode(bad, Params{NetVersion: 0x12})
	assert.Error(t, err)
}
