package bip32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestFromSeedMasterInvariant(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)
	assert.Equal(t, uint8(0), master.Depth)
	assert.Equal(t, Index(0), master.Index)
	assert.Equal(t, [4]byte{}, master.ParentFingerprint)
}

func TestFromSeedRejectsShortSeed(t *testing.T) {
	_, err := FromSeed(VariantSecp256k1, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestCKDPrivHardenedAndSoftSecp256k1(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)

	hardenedChild, err := CKDPriv(master, Hardened(0))
	require.NoError(t, err)
	assert.Equal(t, uint8(1), hardenedChild.Depth)
	assert.True(t, hardenedChild.Index.IsHardened())

	softChild, err := CKDPriv(master, Index(0))
	require.NoError(t, err)
	assert.False(t, softChild.Index.IsHardened())
	assert.False(t, bytes.Equal(hardenedChild.Public, softChild.Public))
}

func TestCKDPubMatchesCKDPrivPublicKeySecp256k1(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)

	childPriv, err := CKDPriv(master, Index(5))
	require.NoError(t, err)

	masterPub := ExtendedKey{
		Variant:   master.Variant,
		Kind:      KindPublic,
		ChainCode: master.ChainCode,
		Public:    master.Public,
	}
	childPub, err := CKDPub(masterPub, Index(5))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(childPriv.Public, childPub.Public))
}

func TestCKDPubRejectsHardenedIndex(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)
	masterPub := ExtendedKey{Variant: master.Variant, Kind: KindPublic, ChainCode: master.ChainCode, Public: master.Public}

	_, err = CKDPub(masterPub, Hardened(0))
	assert.Error(t, err)
}

func TestEd25519SLIP10OnlySupportsHardened(t *testing.T) {
	master, err := FromSeed(VariantEd25519SLIP10, testSeed())
	require.NoError(t, err)

	_, err = CKDPriv(master, Index(0))
	assert.Error(t, err, "non-hardened ed25519 slip-0010 derivation must fail")

	child, err := CKDPriv(master, Hardened(0))
	require.NoError(t, err)
	assert.True(t, child.Index.IsHardened())
}

func TestKholawMasterAndChildDerivation(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(255 - i)
	}
	master, err := FromSeed(VariantEd25519Kholaw, seed)
	require.NoError(t, err)
	require.Len(t, master.Private, 64)

	child, err := CKDPriv(master, Hardened(0))
	require.NoError(t, err)
	require.Len(t, child.Private, 64)
	assert.False(t, bytes.Equal(master.Public, child.Public))
}

func TestDeriveStepwiseMatchesDirectPath(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)

	indices, err := ParsePath("m/0'/1/2")
	require.NoError(t, err)
	viaDerive, err := Derive(master, indices)
	require.NoError(t, err)

	step1, err := CKDPriv(master, Hardened(0))
	require.NoError(t, err)
	step2, err := CKDPriv(step1, Index(1))
	require.NoError(t, err)
	step3, err := CKDPriv(step2, Index(2))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(viaDerive.Public, step3.Public))
}

func TestSerializeParseRoundtrip(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)

	str, err := String(master, BitcoinMainnet)
	require.NoError(t, err)

	parsed, err := Parse(str, VariantSecp256k1, BitcoinMainnet)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(master.Private, parsed.Private))
	assert.True(t, bytes.Equal(master.Public, parsed.Public))
}

func TestParseRejectsWrongVersion(t *testing.T) {
	master, err := FromSeed(VariantSecp256k1, testSeed())
	require.NoError(t, err)
	str, err := String(master, BitcoinMainnet)
	require.NoError(t, err)

	_, err = Parse(str, VariantSecp256k1, BitcoinTestnet)
	assert.Error(t, err)
}

func TestSeedFromMnemonicRejectsInvalidMnemonic(t *testing.T) {
	_, err := SeedFromMnemonic("not a valid mnemonic at all", "")
	assert.Error(t, err)
}
