package hashutil

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleSHA256KnownVector(t *testing.T) {
	got := DoubleSHA256(nil)
	assert.Equal(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456", hex.EncodeToString(got))
}

func TestChecksum4IsFirst4OfDoubleSHA256(t *testing.T) {
	payload := []byte("blockchain-utils")
	full := DoubleSHA256(payload)
	got := Checksum4(payload)
	assert.Equal(t, full[:4], got[:])
}

func TestHash160Length(t *testing.T) {
	h := Hash160([]byte("a compressed public key placeholder............"))
	require.Len(t, h, 20)
}

func TestKeccak256Variadic(t *testing.T) {
	a := Keccak256([]byte("hello"), []byte("world"))
	b := Keccak256([]byte("helloworld"))
	assert.Equal(t, a, b)
}

func TestHMACSHA512Deterministic(t *testing.T) {
	key := []byte("Bitcoin seed")
	msg := []byte("some seed bytes")
	a := HMACSHA512(key, msg)
	b := HMACSHA512(key, msg)
	assert.Equal(t, a, b)
	require.Len(t, a, 64)
}
